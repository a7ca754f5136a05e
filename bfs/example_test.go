package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/polymaze/bfs"
	"github.com/katalvlaran/polymaze/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	id := func(i, j int) core.VertexID { return core.VertexID(i*3 + j) }
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = g.AddVertex(id(i, j), core.V(float64(i), float64(j), 0), 0)
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(id(i, j), id(i, j+1), 1)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(id(i, j), id(i+1, j), 1)
			}
		}
	}

	res, err := bfs.BFS(g, id(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	far, depth := res.Farthest()
	fmt.Println("farthest:", far, "at depth", depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// farthest: 8 at depth 4
}
