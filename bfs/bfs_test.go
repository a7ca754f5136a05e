package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/polymaze/bfs"
	"github.com/katalvlaran/polymaze/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cycle builds an n-cycle of unit-spaced vertices on a regular polygon of unit side.
func cycle(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(core.VertexID(i), core.V(float64(i), 0, 0), 0))
	}
	for i := 0; i < n; i++ {
		// Weight n keeps every chord valid regardless of the collinear layout.
		_, err := g.AddEdge(core.VertexID(i), core.VertexID((i+1)%n), float64(n))
		require.NoError(t, err)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 7)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex(0, core.Vec3{}, 0))
	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, 0, bfs.WithDirection(bfs.Direction(9)))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleDepths covers a simple cycle and checks depths and parents.
func TestBFS_CycleDepths(t *testing.T) {
	g := cycle(t, 6)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []core.VertexID{0, 1, 5, 2, 4, 3}, res.Order)
	assert.Equal(t, 3, res.Depth[3])
	far, d := res.Farthest()
	assert.Equal(t, core.VertexID(3), far)
	assert.Equal(t, 3, d)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{0, 1, 2, 3}, path)
}

// TestBFS_Directions checks that one-way edges are honored forward, reversed
// in Reverse mode and ignored in Undirected mode.
func TestBFS_Directions(t *testing.T) {
	g := cycle(t, 4)
	// 0→1 and 3→0 one-way; 1-2, 2-3 bidirectional.
	e01, _ := g.EdgeBetween(0, 1)
	e30, _ := g.EdgeBetween(3, 0)
	require.NoError(t, g.SetDirection(e01.ID, 0, false))
	require.NoError(t, g.SetDirection(e30.ID, 3, false))

	fwd, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.False(t, fwd.Reached(core.VertexID(42)))
	assert.Equal(t, 3, fwd.Depth[0], "1→2→3→0")

	rev, err := bfs.BFS(g, 1, bfs.WithDirection(bfs.Reverse))
	require.NoError(t, err)
	assert.Equal(t, 1, rev.Depth[0], "0 reaches 1 directly")

	und, err := bfs.BFS(g, 1, bfs.WithDirection(bfs.Undirected))
	require.NoError(t, err)
	assert.Equal(t, 1, und.Depth[0])
	assert.Len(t, und.Order, 4)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := cycle(t, 8)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)

	// Forbid the edge 0-7 so everything is reached clockwise.
	e07, _ := g.EdgeBetween(0, 7)
	res, err = bfs.BFS(g, 0, bfs.WithFilterEdge(func(_ core.VertexID, e core.Edge) bool { return e.ID != e07.ID }))
	require.NoError(t, err)
	assert.Equal(t, 7, res.Depth[7])

	_, err = res.PathTo(99)
	assert.Error(t, err)
}

func TestBFS_HookAndCancel(t *testing.T) {
	g := cycle(t, 5)
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id core.VertexID, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
