package carve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polymaze/bfs"
	"github.com/katalvlaran/polymaze/core"
	"github.com/katalvlaran/polymaze/internal/rng"
	"github.com/katalvlaran/polymaze/verify"
)

// loops re-adds skeleton edges that close long cycles.
//
// A candidate is a skeleton edge missing from the maze with at least one loose
// (dead-end) endpoint. It is accepted when its endpoints are at least
// LoopMinBackboneDistance hops apart in the current maze and their distances
// from the start differ by at least LoopMinStartDelta. Every requested loop
// gets StageAttempts samples; a loop that finds none ends the stage.
func loops(st *state) (StageReport, error) {
	rep := StageReport{Requested: st.params.LoopEdgeCount}
	if rep.Requested == 0 {
		return rep, nil
	}

	dist := verify.Distances(st.maze, st.start)
	for rep.Applied < rep.Requested {
		pool := loopCandidates(st.skel, st.maze)
		committed := false
		for try := 0; try < st.params.StageAttempts && len(pool) > 0; try++ {
			i := rng.Pick(st.src, len(pool))
			e := pool[i]
			pool = append(pool[:i], pool[i+1:]...)
			rep.Attempts++

			ok, err := loopAcceptable(st, e, dist)
			if err != nil {
				return rep, err
			}
			if !ok {
				continue
			}
			if err := st.maze.InsertEdge(e); err != nil {
				return rep, fmt.Errorf("insert loop edge %d: %w", e.ID, err)
			}
			rep.Applied++
			committed = true
			// A loop can only shorten distances from the start.
			dist = verify.Distances(st.maze, st.start)
			break
		}
		if !committed {
			break
		}
	}
	rep.Skipped = rep.Applied < rep.Requested

	return rep, nil
}

// loopCandidates returns the skeleton edges absent from maze that touch a
// loose maze vertex, by edge ID.
func loopCandidates(skel, maze *core.Graph) []core.Edge {
	var out []core.Edge
	for _, e := range skel.Edges() {
		if maze.HasEdge(e.From, e.To) {
			continue
		}
		if len(maze.IncidentEdges(e.From)) == 1 || len(maze.IncidentEdges(e.To)) == 1 {
			out = append(out, e)
		}
	}

	return out
}

func loopAcceptable(st *state, e core.Edge, dist map[core.VertexID]float64) (bool, error) {
	du, okU := dist[e.From]
	dv, okV := dist[e.To]
	if !okU || !okV || math.Abs(du-dv) < st.params.LoopMinStartDelta {
		return false, nil
	}

	// Endpoints closer than the threshold would only make a short detour.
	if minHops := st.params.LoopMinBackboneDistance; minHops > 1 {
		res, err := bfs.BFS(st.maze, e.From,
			bfs.WithContext(st.ctx),
			bfs.WithDirection(bfs.Undirected),
			bfs.WithMaxDepth(minHops-1),
		)
		if err != nil {
			return false, err
		}
		if res.Reached(e.To) {
			return false, nil
		}
	}

	return true, nil
}
