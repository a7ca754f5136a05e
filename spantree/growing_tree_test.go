package spantree_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polymaze/bfs"
	"github.com/katalvlaran/polymaze/core"
	"github.com/katalvlaran/polymaze/internal/rng"
	"github.com/katalvlaran/polymaze/spantree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid builds an n×n unit grid.
func grid(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	id := func(i, j int) core.VertexID { return core.VertexID(i*n + j) }
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, g.AddVertex(id(i, j), core.V(float64(i), float64(j), 0), 0))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j+1 < n {
				_, err := g.AddEdge(id(i, j), id(i, j+1), 1)
				require.NoError(t, err)
			}
			if i+1 < n {
				_, err := g.AddEdge(id(i, j), id(i+1, j), 1)
				require.NoError(t, err)
			}
		}
	}

	return g
}

func TestGrowingTree_Errors(t *testing.T) {
	g := grid(t, 2)
	src := rng.New(1)

	_, err := spantree.GrowingTree(nil, 0, src, 0.5)
	assert.ErrorIs(t, err, spantree.ErrInvalidGraph)
	_, err = spantree.GrowingTree(g, 0, nil, 0.5)
	assert.ErrorIs(t, err, spantree.ErrNeedRand)
	_, err = spantree.GrowingTree(g, 0, src, 1.5)
	assert.ErrorIs(t, err, spantree.ErrBadBias)
	_, err = spantree.GrowingTree(g, 0, src, math.NaN())
	assert.ErrorIs(t, err, spantree.ErrBadBias)
	_, err = spantree.GrowingTree(g, 99, src, 0.5)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	require.NoError(t, g.AddVertex(10, core.V(5, 5, 5), 0))
	_, err = spantree.GrowingTree(g, 0, src, 0.5)
	assert.ErrorIs(t, err, spantree.ErrDisconnected)
}

func TestGrowingTree_SpansEveryVertex(t *testing.T) {
	for _, bias := range []float64{0, 0.5, 1} {
		g := grid(t, 6)
		tree, err := spantree.GrowingTree(g, 7, rng.New(42), bias)
		require.NoError(t, err)
		require.Len(t, tree, g.VertexCount()-1)

		built, err := spantree.Build(g, tree)
		require.NoError(t, err)
		res, err := bfs.BFS(built, 7)
		require.NoError(t, err)
		assert.Len(t, res.Order, g.VertexCount(), "bias %v: tree must be connected", bias)
	}
}

func TestGrowingTree_Deterministic(t *testing.T) {
	g := grid(t, 5)
	a, err := spantree.GrowingTree(g, 0, rng.New(9), 0.7)
	require.NoError(t, err)
	b, err := spantree.GrowingTree(g, 0, rng.New(9), 0.7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestGrowingTree_BiasShapesCorridors checks that full newest-vertex bias on a
// grid produces longer paths from the root than purely random growth, averaged
// over several seeds.
func TestGrowingTree_BiasShapesCorridors(t *testing.T) {
	depth := func(bias float64) int {
		total := 0
		for seed := uint64(1); seed <= 8; seed++ {
			g := grid(t, 8)
			tree, err := spantree.GrowingTree(g, 0, rng.New(seed), bias)
			require.NoError(t, err)
			built, err := spantree.Build(g, tree)
			require.NoError(t, err)
			res, err := bfs.BFS(built, 0)
			require.NoError(t, err)
			_, d := res.Farthest()
			total += d
		}
		return total
	}
	assert.Greater(t, depth(1), depth(0))
}
