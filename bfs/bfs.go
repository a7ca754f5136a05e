// Package bfs provides breadth-first search over a core.View,
// returning hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing hop distance from a start vertex,
// with optional hooks, depth limiting, edge filtering and a choice of
// traversal direction (forward, reverse or undirected).
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polymaze/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   core.View
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.VertexID]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(g core.View, start core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.VertexID]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id core.VertexID, d int, parent core.VertexID, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// edgesOf returns the edges a step from v may follow under the chosen direction.
func (w *walker) edgesOf(v core.VertexID) []core.Edge {
	switch w.opts.Direction {
	case Reverse:
		return w.graph.InEdges(v)
	case Undirected:
		return w.graph.IncidentEdges(v)
	default:
		return w.graph.OutEdges(v)
	}
}

// enqueueNeighbors applies filtering and MaxDepth and queues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.edgesOf(item.id) {
		if !w.opts.FilterEdge(item.id, e) {
			continue
		}
		nbr := e.Other(item.id)
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.id, true)
		}
	}
}
