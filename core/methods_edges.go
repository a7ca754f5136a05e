// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/InsertEdge/RemoveEdge/SetDirection/MakeBidirectional,
//       Edge/EdgeBetween/Edges/EdgeCount/OneWayCount.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - AddEdge IDs are monotonic; InsertEdge advances the counter past the inserted ID.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
// Invariants:
//   - At most one edge per unordered endpoint pair.
//   - Weight >= distance(From.Pos, To.Pos) within weightTolerance.

package core

import (
	"fmt"
	"math"
	"sort"
)

// weightTolerance absorbs float rounding when comparing a weight with the
// straight-line distance it must not undercut.
const weightTolerance = 1e-9

// AddEdge creates a new edge From→To with the given weight and returns its ID.
//
// Steps:
//  1. Reject self-loops.
//  2. Lock; both endpoints must exist.
//  3. Reject a second edge between the same pair, in either orientation.
//  4. Validate the weight against the endpoints' distance.
//  5. Allocate the next ID, apply options, store and link.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, weight float64, opts ...EdgeOption) (EdgeID, error) {
	if from == to {
		return 0, fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	e := &Edge{ID: g.nextEdgeID, From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(e)
	}
	if err := g.checkEdgeLocked(e); err != nil {
		return 0, err
	}
	g.nextEdgeID++
	g.linkEdge(e)

	return e.ID, nil
}

// InsertEdge stores e with its own ID. It restores previously removed edges
// and copies edges between graphs while keeping their identity.
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(e Edge) error {
	if e.From == e.To {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, e.From)
	}
	if e.Backlink {
		e.Directed = true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[e.ID]; ok || e.ID < 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateEdge, e.ID)
	}
	ne := e
	if err := g.checkEdgeLocked(&ne); err != nil {
		return err
	}
	if ne.ID >= g.nextEdgeID {
		g.nextEdgeID = ne.ID + 1
	}
	g.linkEdge(&ne)

	return nil
}

// checkEdgeLocked validates endpoints, pair uniqueness and weight. Caller holds mu.
func (g *Graph) checkEdgeLocked(e *Edge) error {
	fv, ok := g.vertices[e.From]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, e.From)
	}
	tv, ok := g.vertices[e.To]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, e.To)
	}
	if _, dup := g.pairs[keyOf(e.From, e.To)]; dup {
		return fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, e.From, e.To)
	}
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
		return fmt.Errorf("%w: %v", ErrBadWeight, e.Weight)
	}
	if d := fv.Pos.Dist(tv.Pos); e.Weight < d-weightTolerance*math.Max(1, d) {
		return fmt.Errorf("%w: %v below distance %v", ErrBadWeight, e.Weight, d)
	}

	return nil
}

// linkEdge stores e and indexes it on both endpoints. Caller holds mu.
func (g *Graph) linkEdge(e *Edge) {
	g.edges[e.ID] = e
	g.adjacency[e.From][e.ID] = struct{}{}
	g.adjacency[e.To][e.ID] = struct{}{}
	g.pairs[keyOf(e.From, e.To)] = e.ID
}

// unlinkEdge drops e from every index. Caller holds mu.
func (g *Graph) unlinkEdge(e *Edge) {
	delete(g.edges, e.ID)
	delete(g.adjacency[e.From], e.ID)
	delete(g.adjacency[e.To], e.ID)
	delete(g.pairs, keyOf(e.From, e.To))
}

// RemoveEdge deletes one edge.
// Complexity: O(1).
func (g *Graph) RemoveEdge(id EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}
	g.unlinkEdge(e)

	return nil
}

// SetDirection turns edge id into a one-way edge leaving from. The endpoints
// are swapped in place when from is the current To.
func (g *Graph) SetDirection(id EdgeID, from VertexID, backlink bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}
	if !e.Touches(from) {
		return fmt.Errorf("%w: edge %d, vertex %d", ErrNotIncident, id, from)
	}
	if e.From != from {
		e.From, e.To = e.To, e.From
	}
	e.Directed = true
	e.Backlink = backlink

	return nil
}

// MakeBidirectional clears the one-way and backlink flags of edge id.
func (g *Graph) MakeBidirectional(id EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}
	e.Directed = false
	e.Backlink = false

	return nil
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// EdgeBetween returns the edge joining a and b in either orientation.
func (g *Graph) EdgeBetween(a, b VertexID) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.pairs[keyOf(a, b)]
	if !ok {
		return Edge{}, false
	}

	return *g.edges[id], true
}

// HasEdge reports whether a and b are joined by an edge, in either orientation.
func (g *Graph) HasEdge(a, b VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pairs[keyOf(a, b)]

	return ok
}

// Edges returns copies of all edges sorted by ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.mu.RUnlock()
	sortEdges(out)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// OneWayCount returns the number of directed edges.
// Complexity: O(E).
func (g *Graph) OneWayCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, e := range g.edges {
		if e.Directed {
			n++
		}
	}

	return n
}

func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].ID < es[j].ID })
}
