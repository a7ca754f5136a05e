package carve

import (
	"fmt"

	"github.com/katalvlaran/polymaze/bfs"
	"github.com/katalvlaran/polymaze/internal/rng"
	"github.com/katalvlaran/polymaze/spantree"
)

// backbone grows a random spanning tree from a random start and places the
// end at the tree vertex farthest from it in hops (ties to the lowest ID).
//
// Steps:
//  1. Draw the start uniformly from the skeleton vertices.
//  2. Grow the tree with spantree.GrowingTree biased by BranchLengthBias.
//  3. Materialize the tree as the initial maze, keeping skeleton edge IDs.
//  4. BFS over the tree; the farthest vertex is the end, the tree path the backbone.
func backbone(st *state) (StageReport, error) {
	ids := st.skel.Vertices()
	st.start = ids[rng.Pick(st.src, len(ids))]

	tree, err := spantree.GrowingTree(st.skel, st.start, st.src, st.params.BranchLengthBias)
	if err != nil {
		return StageReport{}, err
	}
	maze, err := spantree.Build(st.skel, tree)
	if err != nil {
		return StageReport{}, err
	}
	st.maze = maze

	res, err := bfs.BFS(maze, st.start, bfs.WithContext(st.ctx))
	if err != nil {
		return StageReport{}, err
	}
	st.end, _ = res.Farthest()
	path, err := res.PathTo(st.end)
	if err != nil {
		return StageReport{}, fmt.Errorf("backbone path: %w", err)
	}
	st.backbone = path

	return StageReport{Requested: len(ids) - 1, Applied: len(tree), Attempts: 1}, nil
}
