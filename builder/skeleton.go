// SPDX-License-Identifier: MIT
// Package: polymaze/builder
//
// skeleton.go: Skeleton(spec) builds the full room graph of a subdivided
// polyhedron: every room and every corridor that any maze on that polyhedron
// may use.
//
// Contract:
//   • spec must Validate; otherwise the error matches ErrConstruction.
//   • Vertex IDs are dense, 0..V-1, assigned face by face in lattice order.
//   • Every edge is bidirectional, weight = Euclidean distance × weightFactor.
//   • Every polyhedron edge must be shared by exactly two faces (ErrTopology).
//
// Complexity:
//   • Time:  O(F·N² + E·N) with F faces and E polyhedron edges.
//   • Space: O(V + E) for the resulting graph.
//
// Determinism:
//   • Pure function of (spec, options). Polyhedron edges are stitched in
//     ascending (lowCorner, highCorner) order, so edge IDs are stable too.

package builder

import (
	"sort"

	"github.com/katalvlaran/polymaze/core"
)

const methodSkeleton = "Skeleton"

// cornerPair is a polyhedron edge keyed by its corner indices, lo < hi.
type cornerPair struct{ lo, hi int }

// sideRef locates one side of one face: the global room IDs along it, ordered
// from corner from to corner to.
type sideRef struct {
	rooms    []core.VertexID
	from, to int
}

// Skeleton builds the room graph for spec.
//
// Steps:
//  1. Validate spec.
//  2. Rescale the canonical solid to the configured edge length.
//  3. Lay out rooms on every face and add in-face corridors.
//  4. Stitch the two faces meeting at every polyhedron edge, pairing their
//     boundary rooms from the lower corner to the higher one.
func Skeleton(spec PolyhedronSpec, opts ...Option) (*core.Graph, error) {
	// 1) Validate before doing any work.
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	// 2) Canonical solid scaled to cfg.scale edge length.
	sol := solidOf(spec.Shape)
	k := cfg.scale / sol.edgeLength()

	g := core.NewGraph()
	sides := make(map[cornerPair][]sideRef, len(sol.faces)*3/2)
	next := core.VertexID(0)

	// 3) Rooms and in-face corridors, face by face.
	for fi, face := range sol.faces {
		corners := make([]core.Vec3, len(face))
		for i, c := range face {
			corners[i] = sol.corners[c].Scale(k)
		}
		fr := layoutFace(corners, spec.N)

		base := next
		for _, p := range fr.pos {
			if err := g.AddVertex(next, p, fi); err != nil {
				return nil, constructionErrorf(methodSkeleton, err, "face %d", fi)
			}
			next++
		}
		for _, l := range fr.links {
			if err := addCorridor(g, base+core.VertexID(l[0]), base+core.VertexID(l[1]), cfg); err != nil {
				return nil, err
			}
		}

		for s := range face {
			from, to := face[s], face[(s+1)%len(face)]
			ref := sideRef{from: from, to: to, rooms: make([]core.VertexID, len(fr.sides[s]))}
			for t, local := range fr.sides[s] {
				ref.rooms[t] = base + core.VertexID(local)
			}
			key := cornerPair{lo: min(from, to), hi: max(from, to)}
			sides[key] = append(sides[key], ref)
		}
	}

	// 4) Cross-face corridors in ascending corner-pair order.
	keys := make([]cornerPair, 0, len(sides))
	for key := range sides {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].lo != keys[j].lo {
			return keys[i].lo < keys[j].lo
		}
		return keys[i].hi < keys[j].hi
	})
	for _, key := range keys {
		refs := sides[key]
		if len(refs) != 2 {
			return nil, constructionErrorf(methodSkeleton, ErrTopology,
				"edge %d-%d has %d faces", key.lo, key.hi, len(refs))
		}
		a, b := refs[0].fromLow(key), refs[1].fromLow(key)
		if len(a) != len(b) {
			return nil, constructionErrorf(methodSkeleton, ErrTopology,
				"edge %d-%d has %d and %d boundary rooms", key.lo, key.hi, len(a), len(b))
		}
		for t := range a {
			if err := addCorridor(g, a[t], b[t], cfg); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// fromLow returns the side rooms ordered from key.lo to key.hi.
func (r sideRef) fromLow(key cornerPair) []core.VertexID {
	if r.from == key.lo {
		return r.rooms
	}
	out := make([]core.VertexID, len(r.rooms))
	for i, id := range r.rooms {
		out[len(out)-1-i] = id
	}

	return out
}

// addCorridor joins two rooms with a bidirectional edge whose weight is their
// distance times the configured factor.
func addCorridor(g *core.Graph, u, v core.VertexID, cfg builderConfig) error {
	pu, _ := g.Vertex(u)
	pv, _ := g.Vertex(v)
	w := pu.Pos.Dist(pv.Pos) * cfg.weightFactor
	if _, err := g.AddEdge(u, v, w); err != nil {
		return constructionErrorf(methodSkeleton, err, "corridor %d-%d", u, v)
	}

	return nil
}
