// Package core provides the thread-safe in-memory Graph that every maze stage
// reads and mutates.
//
// The Graph G = (V,E) models rooms and corridors:
//
//   - Vertices carry an integer ID, a 3D position and the index of the
//     polyhedron face they sit on.
//   - Edges carry a float64 weight that is never shorter than the straight-line
//     distance between their endpoints, a Directed flag (one-way From→To) and a
//     Backlink flag (a one-way edge pointing back toward the start).
//   - At most one edge joins any unordered pair of vertices; a second AddEdge
//     between the same pair, in either orientation, returns ErrMultiEdgeNotAllowed.
//   - Self-loops are rejected.
//
// Deterministic iteration:
//
//	Vertices(), Edges(), IncidentEdges(), OutEdges(), InEdges() and Neighbors()
//	always return results sorted by ID, so seeded algorithms built on top of
//	them reproduce the same output for the same input.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id VertexID, pos Vec3, face int) error    // O(1)
//	RemoveVertex(id VertexID) error                     // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to VertexID, w float64, opts ...EdgeOption) (EdgeID, error) // O(1)
//	InsertEdge(e Edge) error                            // O(1), keeps e.ID
//	RemoveEdge(id EdgeID) error                         // O(1)
//	SetDirection(id EdgeID, from VertexID, backlink bool) error
//	MakeBidirectional(id EdgeID) error
//
//	// Queries
//	OutEdges(v) / InEdges(v) / IncidentEdges(v) / Neighbors(v) / Degree(v)
//	Edge(id) / EdgeBetween(a, b) / Edges() / OneWayCount()
//
//	// Copies
//	Clone() / CloneVertices()
//
// Read-only consumers take a View, which *Graph implements.
//
// Concurrency:
//
//	A single sync.RWMutex guards all state. Readers run in parallel; writers are
//	serialized.
package core
