package carve

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polymaze/classify"
	"github.com/katalvlaran/polymaze/core"
	"github.com/katalvlaran/polymaze/internal/rng"
	"github.com/katalvlaran/polymaze/verify"
)

// pruneCandidate is an edge considered for removal where it enters to.
type pruneCandidate struct {
	edge     core.EdgeID
	from, to core.VertexID
}

// prune removes edges entering intersections when the intersection stays
// reachable some other way.
//
// A removal of edge e (from → to, deg(to) >= 2) commits only if all hold:
//
//	(a) start→to still costs less than PenaltyWeight with e penalized by it,
//	    i.e. an alternate route exists;
//	(b) from stays reachable from the start without e;
//	(c) end stays reachable from the start without e;
//	(d) the one-way fraction stays within OneWayRatio.
//
// (a)–(c) are verified concurrently. An edge that fails is not sampled again
// during the pass. PruneAttempts bounds the number of evaluated samples.
//
// Only edges on a cycle are sampled: removing a bridge always strands one
// side, so a maze without loops has nothing to prune and asks for nothing.
func prune(st *state) (StageReport, error) {
	budget := st.params.PruneAttempts
	pool := pruneCandidates(st.maze)
	var rep StageReport
	if len(pool) > 0 {
		rep.Requested = budget
	}
	rejected := make(map[core.EdgeID]bool)

	for rep.Attempts < budget && len(pool) > 0 {
		i := rng.Pick(st.src, len(pool))
		c := pool[i]
		pool = append(pool[:i], pool[i+1:]...)
		if rejected[c.edge] {
			continue
		}
		e, ok := st.maze.Edge(c.edge)
		if !ok {
			continue
		}
		rep.Attempts++
		if !e.Enters(c.to) || len(st.maze.IncidentEdges(c.to)) < 2 {
			continue
		}

		rec, ok, err := checkPrune(st, e, c.from, c.to)
		if err != nil {
			return rep, err
		}
		if !ok {
			rejected[e.ID] = true
			continue
		}
		if err := st.maze.RemoveEdge(e.ID); err != nil {
			return rep, fmt.Errorf("remove edge %d: %w", e.ID, err)
		}
		st.prunes = append(st.prunes, rec)
		rep.Applied++
	}
	rep.Skipped = rep.Requested > 0 && rep.Applied == 0 && rep.Attempts >= budget

	return rep, nil
}

// pruneCandidates lists every (edge, to) pair where a non-bridge edge can be
// walked into a vertex of degree >= 2, ordered by edge ID then to.
func pruneCandidates(maze *core.Graph) []pruneCandidate {
	var out []pruneCandidate
	bridges := classify.Bridges(maze)
	for _, e := range maze.Edges() {
		if bridges[e.ID] {
			continue
		}
		for _, to := range []core.VertexID{e.From, e.To} {
			if e.Enters(to) && len(maze.IncidentEdges(to)) >= 2 {
				out = append(out, pruneCandidate{edge: e.ID, from: e.Other(to), to: to})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].edge != out[j].edge {
			return out[i].edge < out[j].edge
		}
		return out[i].to < out[j].to
	})

	return out
}

// checkPrune runs the four removal checks without mutating the maze.
func checkPrune(st *state, e core.Edge, from, to core.VertexID) (PruneRecord, bool, error) {
	oneWay := st.maze.OneWayCount()
	if e.Directed {
		oneWay--
	}
	if total := st.maze.EdgeCount() - 1; total == 0 || !withinRatio(oneWay, total, st.params.OneWayRatio) {
		return PruneRecord{}, false, nil
	}

	queries := []verify.Query{
		{From: st.start, To: to, Overrides: []verify.Override{verify.Penalty(e.ID, verify.PenaltyWeight)}},
		{From: st.start, To: from, Overrides: []verify.Override{verify.Remove(e.ID)}},
		{From: st.start, To: st.end, Overrides: []verify.Override{verify.Remove(e.ID)}},
	}
	res, err := verify.Batch(st.ctx, st.maze, queries, st.workers)
	if err != nil {
		return PruneRecord{}, false, err
	}
	probe := res[0]
	if !probe.Reachable || probe.Cost >= verify.PenaltyWeight || !res[1].Reachable || !res[2].Reachable {
		return PruneRecord{}, false, nil
	}

	return PruneRecord{Edge: e, From: from, To: to, ProbeCost: probe.Cost}, true, nil
}
