// SPDX-License-Identifier: MIT

// Package builder constructs the room graph ("skeleton") of a subdivided
// regular polyhedron. A maze is later carved out of this graph, so the skeleton
// holds every room and every corridor a maze on that polyhedron could use.
//
// Families and subdivision
//
//   - Tetrahedron, Octahedron, Icosahedron: triangular faces, N(N+1)/2 rooms
//     per face on a triangular lattice.
//   - Cube: square faces, N×N rooms per face.
//   - Dodecahedron: pentagonal faces, five rooms per face; only N=1.
//
// Neighbouring faces are stitched along every polyhedron edge: the N rooms
// bordering that edge on one face are paired with the N rooms on the other.
//
// Guarantees
//
//   - No two corridors join the same pair of rooms.
//   - Every corridor is bidirectional and its weight is at least the
//     straight-line distance between its rooms (WithWeightFactor >= 1).
//   - The skeleton is connected and its size matches ExpectedVertexCount and
//     ExpectedEdgeCount.
//   - Output is a pure function of (PolyhedronSpec, options).
//
// Errors
//
// Every failure matches ErrConstruction. ErrUnknownShape, ErrBadSubdivision and
// ErrTopology narrow the cause. Option constructors (WithScale,
// WithWeightFactor) panic on meaningless values; Skeleton never panics.
package builder
