// Package verify defines the what-if overrides and results of the
// solvability oracle.
package verify

import (
	"errors"

	"github.com/katalvlaran/polymaze/core"
)

// PenaltyWeight is the extra cost pruning attaches to a candidate edge: large
// enough that any route avoiding the edge is cheaper, yet finite so the edge
// stays usable when nothing else works.
const PenaltyWeight = 1e9

// ErrBadWorkers indicates a non-positive worker count for Batch.
var ErrBadWorkers = errors.New("verify: workers must be positive")

// overrideKind enumerates the local edits a query may apply.
type overrideKind uint8

const (
	kindPenalty overrideKind = iota + 1
	kindRemove
	kindOrient
)

// Override is a single local edit applied to one edge for the duration of a
// query. The underlying graph is never touched.
type Override struct {
	kind  overrideKind
	edge  core.EdgeID
	extra float64
	from  core.VertexID
}

// Penalty adds extra to the weight of edge for the query. Negative or NaN
// extras are treated as zero so the heuristic stays admissible.
func Penalty(edge core.EdgeID, extra float64) Override {
	if !(extra > 0) {
		extra = 0
	}

	return Override{kind: kindPenalty, edge: edge, extra: extra}
}

// Remove hides edge from the query.
func Remove(edge core.EdgeID) Override {
	return Override{kind: kindRemove, edge: edge}
}

// Orient treats edge as one-way leaving from for the query.
func Orient(edge core.EdgeID, from core.VertexID) Override {
	return Override{kind: kindOrient, edge: edge, from: from}
}

// Edge returns the edge the override applies to.
func (o Override) Edge() core.EdgeID { return o.edge }

// Result is the outcome of a reachability query.
//
// Unreachable is an ordinary answer, not an error: Reachable is false, Cost is
// +Inf and Path is nil.
type Result struct {
	Reachable bool
	Cost      float64
	Path      []core.VertexID
}

// Hops returns the number of moves along Path, or -1 if unreachable.
func (r Result) Hops() int {
	if !r.Reachable {
		return -1
	}

	return len(r.Path) - 1
}

// Query is one independent what-if question for Batch.
type Query struct {
	From, To  core.VertexID
	Overrides []Override
}

// overrides is the compiled, per-query view of a []Override. Later entries for
// the same edge win.
type overrides struct {
	removed map[core.EdgeID]bool
	penalty map[core.EdgeID]float64
	orient  map[core.EdgeID]core.VertexID
}

func compile(list []Override) overrides {
	var o overrides
	for _, ov := range list {
		switch ov.kind {
		case kindRemove:
			if o.removed == nil {
				o.removed = make(map[core.EdgeID]bool, 1)
			}
			o.removed[ov.edge] = true
		case kindPenalty:
			if o.penalty == nil {
				o.penalty = make(map[core.EdgeID]float64, 1)
			}
			o.penalty[ov.edge] += ov.extra
		case kindOrient:
			if o.orient == nil {
				o.orient = make(map[core.EdgeID]core.VertexID, 1)
			}
			o.orient[ov.edge] = ov.from
		}
	}

	return o
}

// step reports whether e may be walked from u under the overrides, and at what cost.
func (o overrides) step(e core.Edge, u core.VertexID) (float64, bool) {
	if o.removed[e.ID] {
		return 0, false
	}
	if from, ok := o.orient[e.ID]; ok {
		if from != u || !e.Touches(u) {
			return 0, false
		}
	} else if !e.Leaves(u) {
		return 0, false
	}

	return e.Weight + o.penalty[e.ID], true
}
