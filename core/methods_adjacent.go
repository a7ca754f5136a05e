// File: methods_adjacent.go
// Role: Adjacency queries honoring directionality: IncidentEdges/OutEdges/InEdges/Neighbors/Degree.
// Determinism:
//   - Every slice result is sorted by Edge.ID (edges) or VertexID (neighbors).
// Concurrency:
//   - Read lock only.

package core

import (
	"fmt"
	"sort"
)

// IncidentEdges returns every edge touching v regardless of direction.
// Unknown vertices yield nil.
func (g *Graph) IncidentEdges(v VertexID) []Edge {
	return g.collect(v, func(Edge) bool { return true })
}

// OutEdges returns the edges that can be traversed starting at v.
func (g *Graph) OutEdges(v VertexID) []Edge {
	return g.collect(v, func(e Edge) bool { return e.Leaves(v) })
}

// InEdges returns the edges that can be traversed ending at v.
func (g *Graph) InEdges(v VertexID) []Edge {
	return g.collect(v, func(e Edge) bool { return e.Enters(v) })
}

func (g *Graph) collect(v VertexID, keep func(Edge) bool) []Edge {
	g.mu.RLock()
	bucket, ok := g.adjacency[v]
	if !ok {
		g.mu.RUnlock()
		return nil
	}
	out := make([]Edge, 0, len(bucket))
	for eid := range bucket {
		e := *g.edges[eid]
		if keep(e) {
			out = append(out, e)
		}
	}
	g.mu.RUnlock()
	sortEdges(out)

	return out
}

// Neighbors returns the vertices reachable from v in one legal move, ascending.
func (g *Graph) Neighbors(v VertexID) []VertexID {
	out := g.OutEdges(v)
	ids := make([]VertexID, 0, len(out))
	for _, e := range out {
		ids = append(ids, e.Other(v))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Degree returns the number of edges usable to enter v, to leave v, and the
// total number of incident edges. A bidirectional edge counts toward all three.
func (g *Graph) Degree(v VertexID) (in, out, total int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[v]
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	for eid := range bucket {
		e := g.edges[eid]
		if e.Enters(v) {
			in++
		}
		if e.Leaves(v) {
			out++
		}
		total++
	}

	return in, out, total, nil
}
