// File: view.go
// Role: Read-only View interface over a Graph.
// Concurrency:
//   - Every View method only takes the read lock, so a View may be shared by
//     concurrent readers as long as nobody mutates the underlying Graph.

package core

// View is the non-mutating subset of *Graph. Search, classification and
// rendering consumers accept a View so they cannot alter the maze.
type View interface {
	HasVertex(id VertexID) bool
	Vertex(id VertexID) (Vertex, bool)
	Vertices() []VertexID
	VertexCount() int

	Edge(id EdgeID) (Edge, bool)
	EdgeBetween(a, b VertexID) (Edge, bool)
	Edges() []Edge
	EdgeCount() int
	OneWayCount() int

	IncidentEdges(v VertexID) []Edge
	OutEdges(v VertexID) []Edge
	InEdges(v VertexID) []Edge
	Neighbors(v VertexID) []VertexID
	Degree(v VertexID) (in, out, total int, err error)
}

var _ View = (*Graph)(nil)
