package carve

import (
	"sort"

	"github.com/katalvlaran/polymaze/bfs"
	"github.com/katalvlaran/polymaze/core"
	"github.com/katalvlaran/polymaze/internal/rng"
)

// collectibles places CollectibleCount waypoints on vertices other than start
// and end that lie on some start→end walk: reachable from the start and able
// to reach the end under the final directions.
func collectibles(st *state) (StageReport, error) {
	rep := StageReport{Requested: st.params.CollectibleCount}
	if rep.Requested == 0 {
		return rep, nil
	}

	fwd, err := bfs.BFS(st.maze, st.start, bfs.WithContext(st.ctx))
	if err != nil {
		return rep, err
	}
	back, err := bfs.BFS(st.maze, st.end, bfs.WithContext(st.ctx), bfs.WithDirection(bfs.Reverse))
	if err != nil {
		return rep, err
	}

	var eligible []core.VertexID
	for _, id := range st.maze.Vertices() {
		if id != st.start && id != st.end && fwd.Reached(id) && back.Reached(id) {
			eligible = append(eligible, id)
		}
	}
	rng.Shuffle(st.src, eligible)

	n := min(rep.Requested, len(eligible))
	picked := append([]core.VertexID(nil), eligible[:n]...)
	sort.Slice(picked, func(i, j int) bool { return picked[i] < picked[j] })
	st.collectibles = picked

	rep.Applied = n
	rep.Attempts = 1
	rep.Skipped = n < rep.Requested

	return rep, nil
}
