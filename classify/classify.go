// Package classify derives per-vertex degree and role from the current state
// of a maze graph.
//
// Classification is pure: it reads a core.View and returns fresh values, so it
// must simply be re-run after any structural mutation.
package classify

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/polymaze/core"
)

// ErrVertexNotFound is returned by Vertex for unknown IDs.
var ErrVertexNotFound = errors.New("classify: vertex not found")

// junctionDot is the cosine below which two corridors through a vertex are
// considered to continue straight on (about 154°).
const junctionDot = -0.9

// Role is the structural role of a vertex.
type Role int

const (
	// Isolated vertices have no incident edge.
	Isolated Role = iota
	// Loose vertices have exactly one incident edge (a dead end).
	Loose
	// PassThrough vertices have exactly two incident edges to distinct
	// neighbours and can be crossed entering by one and leaving by the other.
	PassThrough
	// Intersection vertices are every other vertex of degree >= 2.
	Intersection
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case Isolated:
		return "isolated"
	case Loose:
		return "loose"
	case PassThrough:
		return "pass-through"
	case Intersection:
		return "intersection"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Info is the classification of a single vertex.
type Info struct {
	ID     core.VertexID
	In     int // edges usable to enter
	Out    int // edges usable to leave
	Degree int // incident edges regardless of direction
	Role   Role
}

// Branches reports whether the vertex is a branch point (degree >= 2).
// PassThrough vertices are branch points too.
func (i Info) Branches() bool { return i.Degree >= 2 }

// Classify returns the Info of every vertex in g.
// Complexity: O(V + E).
func Classify(g core.View) map[core.VertexID]Info {
	ids := g.Vertices()
	out := make(map[core.VertexID]Info, len(ids))
	for _, id := range ids {
		out[id] = classifyOne(g, id)
	}

	return out
}

// Vertex classifies a single vertex.
func Vertex(g core.View, id core.VertexID) (Info, error) {
	if !g.HasVertex(id) {
		return Info{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return classifyOne(g, id), nil
}

func classifyOne(g core.View, id core.VertexID) Info {
	edges := g.IncidentEdges(id)
	info := Info{ID: id, Degree: len(edges)}
	for _, e := range edges {
		if e.Enters(id) {
			info.In++
		}
		if e.Leaves(id) {
			info.Out++
		}
	}

	switch {
	case info.Degree == 0:
		info.Role = Isolated
	case info.Degree == 1:
		info.Role = Loose
	case info.Degree == 2 && passable(id, edges[0], edges[1]):
		info.Role = PassThrough
	default:
		info.Role = Intersection
	}

	return info
}

// passable reports whether id can be crossed via a and b in at least one direction.
func passable(id core.VertexID, a, b core.Edge) bool {
	if a.Other(id) == b.Other(id) {
		return false
	}

	return (a.Enters(id) && b.Leaves(id)) || (b.Enters(id) && a.Leaves(id))
}

// LooseEnds returns the IDs of degree-1 vertices, ascending.
func LooseEnds(g core.View) []core.VertexID { return withRole(g, Loose) }

// PassThroughs returns the IDs of pass-through vertices, ascending.
func PassThroughs(g core.View) []core.VertexID { return withRole(g, PassThrough) }

// Intersections returns the IDs of every vertex with degree >= 2, ascending.
// Pass-through vertices are included.
func Intersections(g core.View) []core.VertexID {
	var out []core.VertexID
	for _, id := range g.Vertices() {
		if classifyOne(g, id).Branches() {
			out = append(out, id)
		}
	}

	return out
}

func withRole(g core.View, r Role) []core.VertexID {
	var out []core.VertexID
	for _, id := range g.Vertices() {
		if classifyOne(g, id).Role == r {
			out = append(out, id)
		}
	}

	return out
}

// Crossing describes how to traverse a pass-through vertex.
type Crossing struct {
	// In and Out are the two incident edges, In sorted before Out by ID.
	In, Out core.Edge
	// A and B are the outer endpoints reached through In and Out respectively.
	A, B core.VertexID
	// Forward reports A→B travel is possible; Backward reports B→A.
	Forward, Backward bool
}

// Bidirectional reports whether the crossing can be walked both ways.
func (c Crossing) Bidirectional() bool { return c.Forward && c.Backward }

// PassThroughPair returns the crossing of a pass-through vertex, or ok=false
// when id is not pass-through.
func PassThroughPair(g core.View, id core.VertexID) (Crossing, bool) {
	edges := g.IncidentEdges(id)
	if len(edges) != 2 || !passable(id, edges[0], edges[1]) {
		return Crossing{}, false
	}
	in, out := edges[0], edges[1]

	return Crossing{
		In:       in,
		Out:      out,
		A:        in.Other(id),
		B:        out.Other(id),
		Forward:  in.Enters(id) && out.Leaves(id),
		Backward: out.Enters(id) && in.Leaves(id),
	}, true
}

// IsJunction reports whether a vertex should be presented as a junction: any
// vertex except one with exactly two distinct neighbours lying roughly in a
// straight line through it.
func IsJunction(g core.View, id core.VertexID) bool {
	v, ok := g.Vertex(id)
	if !ok {
		return false
	}
	seen := make(map[core.VertexID]bool, 4)
	var nbrs []core.VertexID
	for _, e := range g.IncidentEdges(id) {
		o := e.Other(id)
		if !seen[o] {
			seen[o] = true
			nbrs = append(nbrs, o)
		}
	}
	if len(nbrs) != 2 {
		return true
	}
	sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })
	a, _ := g.Vertex(nbrs[0])
	b, _ := g.Vertex(nbrs[1])
	da := a.Pos.Sub(v.Pos).Normalize()
	db := b.Pos.Sub(v.Pos).Normalize()

	return da.Dot(db) >= junctionDot
}

// Bridges returns the edges whose removal would split their component,
// ignoring direction. An edge lying on any cycle is not a bridge.
// Complexity: O(V + E).
func Bridges(g core.View) map[core.EdgeID]bool {
	type frame struct {
		v      core.VertexID
		via    core.EdgeID
		hasVia bool
		edges  []core.Edge
		next   int
	}

	disc := make(map[core.VertexID]int)
	low := make(map[core.VertexID]int)
	out := make(map[core.EdgeID]bool)
	clock := 0
	for _, root := range g.Vertices() {
		if _, seen := disc[root]; seen {
			continue
		}
		clock++
		disc[root], low[root] = clock, clock
		stack := []frame{{v: root, edges: g.IncidentEdges(root)}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.edges) {
				e := top.edges[top.next]
				top.next++
				if top.hasVia && e.ID == top.via {
					continue
				}
				w := e.Other(top.v)
				if d, seen := disc[w]; seen {
					low[top.v] = min(low[top.v], d)
					continue
				}
				clock++
				disc[w], low[w] = clock, clock
				stack = append(stack, frame{v: w, via: e.ID, hasVia: true, edges: g.IncidentEdges(w)})
				continue
			}

			done := *top
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1].v
			low[parent] = min(low[parent], low[done.v])
			if low[done.v] > disc[parent] {
				out[done.via] = true
			}
		}
	}

	return out
}
