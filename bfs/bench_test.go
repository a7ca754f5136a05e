package bfs_test

import (
	"testing"

	"github.com/katalvlaran/polymaze/bfs"
	"github.com/katalvlaran/polymaze/core"
)

// BenchmarkBFS_Grid measures traversal of a 64×64 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	const n = 64
	g := core.NewGraph()
	id := func(i, j int) core.VertexID { return core.VertexID(i*n + j) }
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = g.AddVertex(id(i, j), core.V(float64(i), float64(j), 0), 0)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j+1 < n {
				_, _ = g.AddEdge(id(i, j), id(i, j+1), 1)
			}
			if i+1 < n {
				_, _ = g.AddEdge(id(i, j), id(i+1, j), 1)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
