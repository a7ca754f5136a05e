package carve

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polymaze/classify"
	"github.com/katalvlaran/polymaze/core"
	"github.com/katalvlaran/polymaze/internal/rng"
	"github.com/katalvlaran/polymaze/verify"
)

// cull collapses pass-through vertices (other than start and end) into a
// single edge joining their two neighbours, until no collapse applies.
//
// Merge rules:
//   - weight is the sum of both weights;
//   - bidirectional iff both originals are, otherwise one-way along the only
//     direction the crossing allowed;
//   - backlink if either original was a backlink.
//
// A collapse is skipped when the neighbours are already joined. Losing an
// edge can push the one-way fraction over OneWayRatio; the collapse then
// turns enough other one-way edges back into bidirectional ones, which only
// adds routes. It is applied, start→end is re-verified, and it is reverted
// if reachability changed.
func cull(st *state) (StageReport, error) {
	var rep StageReport
	if !st.params.CullPassThroughNodes {
		return rep, nil
	}
	rep.Requested = len(st.collapsible())

	for changed := true; changed; {
		changed = false
		for _, id := range st.collapsible() {
			rep.Attempts++
			ok, err := st.collapse(id)
			if err != nil {
				return rep, err
			}
			if ok {
				rep.Applied++
				changed = true
			}
		}
	}

	return rep, nil
}

// collapsible lists the current pass-through vertices other than start/end.
func (st *state) collapsible() []core.VertexID {
	var out []core.VertexID
	for _, id := range classify.PassThroughs(st.maze) {
		if id != st.start && id != st.end {
			out = append(out, id)
		}
	}

	return out
}

// collapse tries to replace pass-through id by a merged edge.
func (st *state) collapse(id core.VertexID) (bool, error) {
	c, ok := classify.PassThroughPair(st.maze, id)
	if !ok || st.maze.HasEdge(c.A, c.B) {
		return false, nil
	}

	directed := !c.Bidirectional()
	oneWay := st.maze.OneWayCount()
	for _, e := range []core.Edge{c.In, c.Out} {
		if e.Directed {
			oneWay--
		}
	}
	if directed {
		oneWay++
	}
	excess := oneWay - allowedOneWay(st.maze.EdgeCount()-1, st.params.OneWayRatio)
	var relaxable []core.EdgeID
	if excess > 0 {
		relaxable = st.relaxable(c)
		if len(relaxable) < excess {
			return false, nil
		}
	}

	from, to := c.A, c.B
	if !c.Forward {
		from, to = c.B, c.A
	}
	backlink := directed && (c.In.Backlink || c.Out.Backlink)

	// Apply.
	if err := st.maze.RemoveEdge(c.In.ID); err != nil {
		return false, fmt.Errorf("collapse %d: %w", id, err)
	}
	if err := st.maze.RemoveEdge(c.Out.ID); err != nil {
		return false, fmt.Errorf("collapse %d: %w", id, err)
	}
	mergedID, err := st.maze.AddEdge(from, to, c.In.Weight+c.Out.Weight,
		core.WithDirected(directed), core.WithBacklink(backlink))
	if err != nil {
		return false, fmt.Errorf("collapse %d: %w", id, err)
	}

	// Verify, revert on regression.
	if !verify.Reachable(st.maze, st.start, st.end).Reachable {
		if err := st.revertCollapse(mergedID, c); err != nil {
			return false, err
		}
		return false, nil
	}

	var relaxed []core.EdgeID
	for ; excess > 0; excess-- {
		i := rng.Pick(st.src, len(relaxable))
		eid := relaxable[i]
		relaxable = append(relaxable[:i], relaxable[i+1:]...)
		if err := st.maze.MakeBidirectional(eid); err != nil {
			return false, fmt.Errorf("collapse %d: %w", id, err)
		}
		relaxed = append(relaxed, eid)
	}

	if err := st.maze.RemoveVertex(id); err != nil {
		return false, fmt.Errorf("collapse %d: %w", id, err)
	}
	merged, _ := st.maze.Edge(mergedID)
	st.collapses = append(st.collapses, CollapseRecord{Vertex: id, In: c.In, Out: c.Out, Merged: merged, Relaxed: relaxed})

	return true, nil
}

// relaxable lists the one-way edges outside crossing c, by ID.
func (st *state) relaxable(c classify.Crossing) []core.EdgeID {
	var out []core.EdgeID
	for _, e := range st.maze.Edges() {
		if e.Directed && e.ID != c.In.ID && e.ID != c.Out.ID {
			out = append(out, e.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func (st *state) revertCollapse(merged core.EdgeID, c classify.Crossing) error {
	if err := st.maze.RemoveEdge(merged); err != nil {
		return fmt.Errorf("revert collapse: %w", err)
	}
	for _, e := range []core.Edge{c.In, c.Out} {
		if err := st.maze.InsertEdge(e); err != nil {
			return fmt.Errorf("revert collapse: %w", err)
		}
	}

	return nil
}
