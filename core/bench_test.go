// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/polymaze/core"
)

// BenchmarkAddEdge measures adding edges from a hub to fresh leaves.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddVertex(0, core.V(0, 0, 0), -1)
	for i := 1; i <= b.N; i++ {
		_ = g.AddVertex(core.VertexID(i), core.V(1, 0, 0), -1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 1; i <= b.N; i++ {
		_, _ = g.AddEdge(0, core.VertexID(i), 1)
	}
}

// BenchmarkOutEdges measures adjacency retrieval on a star of 1000 leaves.
func BenchmarkOutEdges(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddVertex(0, core.V(0, 0, 0), -1)
	for i := 1; i <= 1000; i++ {
		_ = g.AddVertex(core.VertexID(i), core.V(0, 1, 0), -1)
		_, _ = g.AddEdge(0, core.VertexID(i), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.OutEdges(0)
	}
}

// BenchmarkClone measures the O(V+E) deep copy.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddVertex(core.VertexID(i), core.V(float64(i), 0, 0), -1)
		if i > 0 {
			_, _ = g.AddEdge(core.VertexID(i-1), core.VertexID(i), 1)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
