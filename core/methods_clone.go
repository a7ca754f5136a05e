// File: methods_clone.go
// Role: Deep copies: Clone (vertices + edges) and CloneVertices (vertices only).
// Determinism:
//   - Vertex and edge IDs are preserved; the edge ID counter is carried over so
//     edges added to the copy never collide with copied IDs.
// Concurrency:
//   - Read lock on the source; the result is a fresh, unshared Graph.

package core

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := g.CloneVertices()

	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edges {
		ne := *e
		out.linkEdge(&ne)
	}

	return out
}

// CloneVertices returns a copy of g with every vertex and no edges.
// Complexity: O(V).
func (g *Graph) CloneVertices() *Graph {
	out := NewGraph()

	g.mu.RLock()
	defer g.mu.RUnlock()
	for id, v := range g.vertices {
		nv := *v
		out.vertices[id] = &nv
		out.adjacency[id] = make(map[EdgeID]struct{})
	}
	out.nextEdgeID = g.nextEdgeID

	return out
}
