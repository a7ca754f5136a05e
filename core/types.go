// Package core defines the Graph, Vertex and Edge types shared by every stage
// of maze generation, plus thread-safe primitives for building, querying and
// cloning graphs.
//
// Vertices and edges live in flat id-keyed maps (an arena). Cycles and
// back-pointing edges are ordinary id pairs, never embedded references.
//
// Errors:
//
//	ErrBadVertexID         - vertex ID is negative.
//	ErrDuplicateVertex     - vertex ID already present.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrDuplicateEdge       - edge ID already present (InsertEdge).
//	ErrBadWeight           - weight is NaN, negative, or shorter than the endpoints' distance.
//	ErrLoopNotAllowed      - self-loop.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoint pair, in either order.
//	ErrNotIncident         - orientation requested from a vertex the edge does not touch.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates that the provided vertex ID is negative.
	ErrBadVertexID = errors.New("core: vertex ID is negative")

	// ErrDuplicateVertex indicates AddVertex was called with an ID already in use.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates InsertEdge was called with an edge ID already in use.
	ErrDuplicateEdge = errors.New("core: duplicate edge ID")

	// ErrBadWeight indicates a weight that is NaN, negative, infinite, or below the
	// straight-line distance between the endpoints.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNotIncident indicates an orientation was requested from a vertex that is
	// not an endpoint of the edge.
	ErrNotIncident = errors.New("core: vertex is not an endpoint of edge")
)

// VertexID identifies a vertex within its Graph.
type VertexID int

// EdgeID identifies an edge within its Graph. IDs are never reused by AddEdge.
type EdgeID int

// Vertex is a room of the maze.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID VertexID

	// Pos is the room position in model space. Search uses it as a distance heuristic.
	Pos Vec3

	// Face is the index of the polyhedron face the room sits on, or -1 when unknown.
	Face int
}

// Edge is a corridor between two rooms.
//
// A bidirectional edge (Directed == false) is traversable both ways; a directed
// edge only From→To. Backlink marks a directed edge that leads back toward the
// start of the maze.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// From is the source vertex ID.
	From VertexID

	// To is the destination vertex ID.
	To VertexID

	// Weight is the traversal cost; never below the endpoints' straight-line distance.
	Weight float64

	// Directed marks a one-way edge.
	Directed bool

	// Backlink marks a one-way edge leading toward an earlier backbone vertex.
	Backlink bool
}

// Other returns the endpoint of e opposite to v.
// If v is not an endpoint, e.To is returned.
func (e Edge) Other(v VertexID) VertexID {
	if e.To == v {
		return e.From
	}

	return e.To
}

// Touches reports whether v is an endpoint of e.
func (e Edge) Touches(v VertexID) bool { return e.From == v || e.To == v }

// Leaves reports whether e can be traversed starting at v.
func (e Edge) Leaves(v VertexID) bool {
	if e.From == v {
		return true
	}

	return !e.Directed && e.To == v
}

// Enters reports whether e can be traversed ending at v.
func (e Edge) Enters(v VertexID) bool {
	if e.To == v {
		return true
	}

	return !e.Directed && e.From == v
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithDirected marks the new edge as one-way From→To.
func WithDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// WithBacklink marks the new edge as a backlink. Backlink implies Directed.
func WithBacklink(backlink bool) EdgeOption {
	return func(e *Edge) {
		e.Backlink = backlink
		if backlink {
			e.Directed = true
		}
	}
}

// pairKey is the unordered endpoint pair of an edge, lower ID first.
type pairKey struct {
	lo, hi VertexID
}

func keyOf(a, b VertexID) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// Graph is the in-memory maze graph.
//
// mu guards every map. nextEdgeID is only advanced under the write lock.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID EdgeID
	vertices   map[VertexID]*Vertex
	edges      map[EdgeID]*Edge

	// adjacency[v][edgeID] = struct{}{} for every edge incident to v, regardless of direction.
	adjacency map[VertexID]map[EdgeID]struct{}

	// pairs maps an unordered endpoint pair to the single edge joining it.
	pairs map[pairKey]EdgeID
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[VertexID]*Vertex),
		edges:     make(map[EdgeID]*Edge),
		adjacency: make(map[VertexID]map[EdgeID]struct{}),
		pairs:     make(map[pairKey]EdgeID),
	}
}
