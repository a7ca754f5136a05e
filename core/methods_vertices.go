// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/RemoveVertex/HasVertex/Vertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new vertex with the given position and face index.
//
// Steps:
//  1. Validate id >= 0.
//  2. Lock, reject duplicates with ErrDuplicateVertex.
//  3. Store the vertex and an empty adjacency bucket.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id VertexID, pos Vec3, face int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrBadVertexID, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateVertex, id)
	}
	g.vertices[id] = &Vertex{ID: id, Pos: pos, Face: face}
	g.adjacency[id] = make(map[EdgeID]struct{})

	return nil
}

// RemoveVertex deletes a vertex and every edge incident to it.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	for eid := range g.adjacency[id] {
		g.unlinkEdge(g.edges[eid])
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID.
func (g *Graph) Vertex(id VertexID) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}

	return *v, true
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	ids := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
