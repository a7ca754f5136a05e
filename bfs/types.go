// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.View.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/polymaze/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Direction selects which edges a step may follow.
type Direction int

const (
	// Forward follows edges the way a player may walk them (default).
	Forward Direction = iota
	// Reverse follows edges against their orientation: the result holds every
	// vertex that can reach the start.
	Reverse
	// Undirected ignores one-way flags entirely (hop distance over the topology).
	Undirected
)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Direction chooses Forward, Reverse or Undirected traversal.
	Direction Direction

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.VertexID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterEdge can skip edges by returning false. Called for each edge
	// considered from curr.
	FilterEdge func(curr core.VertexID, e core.Edge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - Forward traversal
//   - no depth limit (MaxDepth == 0)
//   - no filtering and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Direction:  Forward,
		OnVisit:    func(core.VertexID, int) error { return nil },
		FilterEdge: func(core.VertexID, core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects the traversal direction.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		switch d {
		case Forward, Reverse, Undirected:
			o.Direction = d
		default:
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, d)
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.VertexID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(curr core.VertexID, e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree.
type Result struct {
	Start  core.VertexID
	Order  []core.VertexID
	Depth  map[core.VertexID]int
	Parent map[core.VertexID]core.VertexID
}

// Reached reports whether dest was visited.
func (r *Result) Reached(dest core.VertexID) bool {
	_, ok := r.Depth[dest]

	return ok
}

// Farthest returns the visited vertex with the greatest depth; ties go to the
// lowest ID.
func (r *Result) Farthest() (core.VertexID, int) {
	best, bestDepth := r.Start, 0
	for _, id := range r.Order {
		d := r.Depth[id]
		if d > bestDepth || (d == bestDepth && id < best) {
			best, bestDepth = id, d
		}
	}

	return best, bestDepth
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []core.VertexID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
