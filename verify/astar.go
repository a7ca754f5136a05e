// Package verify is the read-only solvability oracle used to validate every
// destructive or directional maze edit before it is committed.
package verify

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/polymaze/core"
)

// Reachable runs an A* search from → to over g honoring edge directionality
// and the supplied overrides, and reports whether to is reachable and at what
// cost.
//
// The heuristic is the straight-line distance between vertex positions, which
// never overestimates because every edge weight is at least the distance
// between its endpoints (penalties only add weight).
//
// Unknown from/to vertices are simply unreachable. from == to is reachable at
// cost 0 with a one-vertex path.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func Reachable(g core.View, from, to core.VertexID, ovs ...Override) Result {
	if g == nil || !g.HasVertex(from) || !g.HasVertex(to) {
		return unreachable()
	}
	goal, _ := g.Vertex(to)
	r := newRunner(g, compile(ovs), func(v core.Vertex) float64 { return v.Pos.Dist(goal.Pos) })
	r.run(from, to, true)

	return r.result(from, to)
}

// Distances runs a full Dijkstra (zero heuristic) from from and returns the
// cost of every reachable vertex. Unreachable vertices are absent.
func Distances(g core.View, from core.VertexID, ovs ...Override) map[core.VertexID]float64 {
	if g == nil || !g.HasVertex(from) {
		return map[core.VertexID]float64{}
	}
	r := newRunner(g, compile(ovs), func(core.Vertex) float64 { return 0 })
	r.run(from, from, false)

	out := make(map[core.VertexID]float64, len(r.closed))
	for v := range r.closed {
		out[v] = r.dist[v]
	}

	return out
}

func unreachable() Result {
	return Result{Reachable: false, Cost: math.Inf(1)}
}

// runner holds the mutable state for a single search. It is never shared
// between goroutines.
type runner struct {
	g      core.View
	ovs    overrides
	h      func(core.Vertex) float64
	dist   map[core.VertexID]float64
	prev   map[core.VertexID]core.VertexID
	closed map[core.VertexID]bool
	pq     nodePQ
}

func newRunner(g core.View, ovs overrides, h func(core.Vertex) float64) *runner {
	n := g.VertexCount()

	return &runner{
		g:      g,
		ovs:    ovs,
		h:      h,
		dist:   make(map[core.VertexID]float64, n),
		prev:   make(map[core.VertexID]core.VertexID, n),
		closed: make(map[core.VertexID]bool, n),
		pq:     make(nodePQ, 0, n),
	}
}

// run is the main loop. With stopAtGoal it returns as soon as goal is settled.
func (r *runner) run(src, goal core.VertexID, stopAtGoal bool) {
	sv, _ := r.g.Vertex(src)
	r.dist[src] = 0
	heap.Push(&r.pq, &nodeItem{id: src, g: 0, f: r.h(sv)})

	for r.pq.Len() > 0 {
		// 1) Pop the best candidate; skip stale entries (lazy decrease-key).
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.closed[u] {
			continue
		}
		r.closed[u] = true
		if stopAtGoal && u == goal {
			return
		}

		// 2) Relax every edge walkable from u under the overrides.
		for _, e := range r.g.IncidentEdges(u) {
			w, ok := r.ovs.step(e, u)
			if !ok {
				continue
			}
			v := e.Other(u)
			if r.closed[v] {
				continue
			}
			nd := r.dist[u] + w
			if old, seen := r.dist[v]; seen && nd >= old {
				continue
			}
			r.dist[v] = nd
			r.prev[v] = u
			vv, _ := r.g.Vertex(v)
			heap.Push(&r.pq, &nodeItem{id: v, g: nd, f: nd + r.h(vv)})
		}
	}
}

func (r *runner) result(src, goal core.VertexID) Result {
	if !r.closed[goal] {
		return unreachable()
	}
	path := []core.VertexID{goal}
	for cur := goal; cur != src; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Reachable: true, Cost: r.dist[goal], Path: path}
}

// nodeItem is a heap entry with f = g + h.
type nodeItem struct {
	id core.VertexID
	g  float64
	f  float64
}

// nodePQ is a min-heap of *nodeItem ordered by f, then by larger g, then by id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}

	return a.id < b.id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
