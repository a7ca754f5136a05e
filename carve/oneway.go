package carve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polymaze/bfs"
	"github.com/katalvlaran/polymaze/core"
	"github.com/katalvlaran/polymaze/internal/rng"
	"github.com/katalvlaran/polymaze/verify"
)

// conversion is a sampled one-way candidate.
type conversion struct {
	edge     core.Edge
	from     core.VertexID
	backlink bool
}

// oneWay turns up to floor(OneWayRatio·E) bidirectional edges into one-way
// edges, never breaking start→end reachability.
//
// Steps:
//  1. Rank vertices by hop distance from the start (ignoring direction).
//  2. Sample a batch of candidates; each becomes a backlink (pointing toward
//     the lower rank) with probability BacklinkRatio, else points away from it.
//  3. Verify the batch concurrently with an Orient override per candidate.
//  4. Commit the first passing candidate in sample order. Candidates that
//     failed before it are dropped for good; those after it go back to the
//     pool since they were checked against the pre-commit maze.
//
// The batch size is fixed, so sampling and commits do not depend on the
// worker count. Budget: StageAttempts evaluations per requested edge.
func oneWay(st *state) (StageReport, error) {
	target := int(math.Floor(st.params.OneWayRatio * float64(st.maze.EdgeCount())))
	need := target - st.maze.OneWayCount()
	rep := StageReport{Requested: max(need, 0)}
	if need <= 0 {
		return rep, nil
	}

	ranks, err := bfs.BFS(st.maze, st.start, bfs.WithContext(st.ctx), bfs.WithDirection(bfs.Undirected))
	if err != nil {
		return rep, err
	}
	var pool []core.Edge
	for _, e := range st.maze.Edges() {
		if !e.Directed {
			pool = append(pool, e)
		}
	}

	budget := need * st.params.StageAttempts
	for rep.Applied < need && rep.Attempts < budget && len(pool) > 0 {
		n := min(speculationBatch, len(pool), budget-rep.Attempts)
		batch := make([]conversion, 0, n)
		for len(batch) < n {
			i := rng.Pick(st.src, len(pool))
			e := pool[i]
			pool = append(pool[:i], pool[i+1:]...)
			batch = append(batch, orientFor(st.src, e, ranks.Depth, st.params.BacklinkRatio))
		}

		queries := make([]verify.Query, len(batch))
		for i, c := range batch {
			queries[i] = verify.Query{
				From:      st.start,
				To:        st.end,
				Overrides: []verify.Override{verify.Orient(c.edge.ID, c.from)},
			}
		}
		results, err := verify.Batch(st.ctx, st.maze, queries, st.workers)
		if err != nil {
			return rep, err
		}

		committed := false
		for i, c := range batch {
			if committed {
				pool = append(pool, c.edge)
				continue
			}
			rep.Attempts++
			if !results[i].Reachable {
				continue
			}
			if err := st.maze.SetDirection(c.edge.ID, c.from, c.backlink); err != nil {
				return rep, fmt.Errorf("orient edge %d: %w", c.edge.ID, err)
			}
			rep.Applied++
			committed = true
		}
	}
	rep.Skipped = rep.Applied < need

	return rep, nil
}

// orientFor decides the direction of e. One Float64 is always drawn so the
// sampling sequence does not depend on the ranks.
func orientFor(src Sampler, e core.Edge, rank map[core.VertexID]int, backlinkRatio float64) conversion {
	back := rng.Chance(src, backlinkRatio)
	near, far := e.From, e.To
	if rank[far] < rank[near] {
		near, far = far, near
	}
	if back {
		return conversion{edge: e, from: far, backlink: rank[far] != rank[near]}
	}

	return conversion{edge: e, from: near}
}
