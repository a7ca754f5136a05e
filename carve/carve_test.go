package carve_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymaze/bfs"
	"github.com/katalvlaran/polymaze/builder"
	"github.com/katalvlaran/polymaze/carve"
	"github.com/katalvlaran/polymaze/core"
	"github.com/katalvlaran/polymaze/difficulty"
	"github.com/katalvlaran/polymaze/verify"
)

func skeleton(t *testing.T, shape builder.Shape, n int) *core.Graph {
	t.Helper()
	g, err := builder.Skeleton(builder.PolyhedronSpec{Shape: shape, N: n})
	require.NoError(t, err)

	return g
}

func TestCarve_TetrahedronTree(t *testing.T) {
	p, err := difficulty.New(
		difficulty.WithOneWayRatio(0),
		difficulty.WithLoops(0, 1, 0),
		difficulty.WithCulling(false),
	)
	require.NoError(t, err)

	for seed := uint64(0); seed < 20; seed++ {
		res, err := carve.Carve(context.Background(), skeleton(t, builder.Tetrahedron, 1), p, seed)
		require.NoError(t, err)

		g := res.Graph
		assert.Equal(t, 4, g.VertexCount())
		require.Equal(t, 3, g.EdgeCount(), "seed %d: spanning tree expected", seed)
		assert.Zero(t, g.OneWayCount())

		path := verify.Reachable(g, res.Start, res.End)
		require.True(t, path.Reachable)
		assert.GreaterOrEqual(t, path.Hops(), 1)
		assert.LessOrEqual(t, path.Hops(), 3)
		assert.Equal(t, path.Path, res.Backbone)
		assert.NoError(t, res.Incomplete())
	}
}

func TestCarve_IcosahedronCulling(t *testing.T) {
	p := difficulty.Default()
	p.CullPassThroughNodes = true
	require.Positive(t, p.OneWayRatio)
	skel := skeleton(t, builder.Icosahedron, 2)

	for seed := uint64(0); seed < 20; seed++ {
		res, err := carve.Carve(context.Background(), skel, p, seed)
		require.NoError(t, err)
		assert.Less(t, res.Graph.VertexCount(), 60, "seed %d", seed)
		assert.NotEmpty(t, res.Collapses, "seed %d", seed)
		assert.True(t, verify.Reachable(res.Graph, res.Start, res.End).Reachable)
		assert.LessOrEqual(t, float64(res.Graph.OneWayCount()), p.OneWayRatio*float64(res.Graph.EdgeCount())+1e-9)

		for _, c := range res.Collapses {
			assert.False(t, res.Graph.HasVertex(c.Vertex))
			assert.NotEqual(t, res.Start, c.Vertex)
			assert.NotEqual(t, res.End, c.Vertex)
			assert.InDelta(t, c.In.Weight+c.Out.Weight, c.Merged.Weight, 1e-9)
			assert.Equal(t, c.In.Backlink || c.Out.Backlink, c.Merged.Backlink)
			assert.Equal(t, c.In.Directed || c.Out.Directed, c.Merged.Directed)
			for _, id := range c.Relaxed {
				if e, ok := res.Graph.Edge(id); ok {
					assert.False(t, e.Directed, "relaxed edge %d", id)
				}
			}
		}
	}
}

func TestCarve_EasyIsComplete(t *testing.T) {
	for _, spec := range []builder.PolyhedronSpec{
		{Shape: builder.Cube, N: 3},
		{Shape: builder.Icosahedron, N: 2},
	} {
		skel := skeleton(t, spec.Shape, spec.N)
		for seed := uint64(0); seed < 10; seed++ {
			res, err := carve.Carve(context.Background(), skel, difficulty.Easy(), seed)
			require.NoError(t, err)
			assert.NoError(t, res.Incomplete(), "%s seed %d", spec, seed)

			rep, ok := res.Report(carve.StagePrune)
			require.True(t, ok)
			assert.Zero(t, rep.Requested, "a tree has nothing to prune")
			assert.False(t, rep.Skipped)
		}
	}
}

// TestCarve_Invariants checks the properties every generated maze must hold.
func TestCarve_Invariants(t *testing.T) {
	specs := []builder.PolyhedronSpec{
		{Shape: builder.Tetrahedron, N: 4},
		{Shape: builder.Cube, N: 3},
		{Shape: builder.Octahedron, N: 3},
		{Shape: builder.Dodecahedron, N: 1},
		{Shape: builder.Icosahedron, N: 2},
	}
	presets := map[string]difficulty.Params{"easy": difficulty.Easy(), "medium": difficulty.Medium(), "hard": difficulty.Hard()}

	for _, spec := range specs {
		for name, p := range presets {
			for seed := uint64(1); seed <= 3; seed++ {
				skel, err := builder.Skeleton(spec)
				require.NoError(t, err)
				res, err := carve.Carve(context.Background(), skel, p, seed)
				require.NoError(t, err, "%s %s seed %d", spec, name, seed)
				g := res.Graph

				// Start reaches end.
				require.True(t, verify.Reachable(g, res.Start, res.End).Reachable, "%s %s seed %d", spec, name, seed)

				// One-way fraction within ratio.
				assert.LessOrEqual(t, float64(g.OneWayCount()), p.OneWayRatio*float64(g.EdgeCount())+1e-9)

				// Degree >= 1 away from start/end; weights never undercut distance.
				for _, id := range g.Vertices() {
					if id == res.Start || id == res.End {
						continue
					}
					_, _, deg, err := g.Degree(id)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, deg, 1)
				}
				for _, e := range g.Edges() {
					a, _ := g.Vertex(e.From)
					b, _ := g.Vertex(e.To)
					assert.GreaterOrEqual(t, e.Weight+1e-9, a.Pos.Dist(b.Pos))
					if e.Backlink {
						assert.True(t, e.Directed)
					}
				}

				// Collectibles lie on a start→end walk.
				assert.LessOrEqual(t, len(res.Collectibles), p.CollectibleCount)
				for _, c := range res.Collectibles {
					assert.True(t, verify.Reachable(g, res.Start, c).Reachable)
					assert.True(t, verify.Reachable(g, c, res.End).Reachable)
				}

				// The skeleton is untouched.
				n, _ := builder.ExpectedEdgeCount(spec)
				assert.Equal(t, n, skel.EdgeCount())
			}
		}
	}
}

func TestCarve_Deterministic(t *testing.T) {
	run := func(workers int) *carve.Result {
		res, err := carve.Carve(context.Background(), skeleton(t, builder.Octahedron, 4), difficulty.Hard(), 99,
			carve.WithWorkers(workers))
		require.NoError(t, err)
		return res
	}
	a, b, c := run(1), run(1), run(6)

	for _, other := range []*carve.Result{b, c} {
		assert.Empty(t, cmp.Diff(a.Graph.Edges(), other.Graph.Edges()))
		assert.Empty(t, cmp.Diff(a.Graph.Vertices(), other.Graph.Vertices()))
		assert.Empty(t, cmp.Diff(a.Reports, other.Reports))
		assert.Empty(t, cmp.Diff(a.Prunes, other.Prunes))
		assert.Empty(t, cmp.Diff(a.Collapses, other.Collapses))
		assert.Equal(t, a.Start, other.Start)
		assert.Equal(t, a.End, other.End)
		assert.Equal(t, a.Collectibles, other.Collectibles)
	}
}

func TestCarve_BackboneEndIsFarthest(t *testing.T) {
	p := difficulty.Easy()
	p.CullPassThroughNodes = false
	p.PruneAttempts = 1
	res, err := carve.Carve(context.Background(), skeleton(t, builder.Cube, 3), p, 5)
	require.NoError(t, err)

	rep, ok := res.Report(carve.StageBackbone)
	require.True(t, ok)
	assert.Equal(t, 53, rep.Applied)
	require.NotEmpty(t, res.Backbone)
	assert.Equal(t, res.Start, res.Backbone[0])
	assert.Equal(t, res.End, res.Backbone[len(res.Backbone)-1])

	r, err := bfs.BFS(res.Graph, res.Start, bfs.WithDirection(bfs.Undirected))
	require.NoError(t, err)
	assert.Len(t, r.Order, 54)
}

type recorder struct {
	started  []carve.Stage
	finished []carve.StageReport
}

func (r *recorder) StageStarted(s carve.Stage) { r.started = append(r.started, s) }
func (r *recorder) StageFinished(rep carve.StageReport, _ time.Duration) {
	r.finished = append(r.finished, rep)
}

func TestCarve_ObserverAndReports(t *testing.T) {
	rec := &recorder{}
	p := difficulty.Hard()
	res, err := carve.Carve(context.Background(), skeleton(t, builder.Icosahedron, 2), p, 3, carve.WithObserver(rec))
	require.NoError(t, err)

	assert.Equal(t, carve.Stages(), rec.started)
	assert.Equal(t, res.Reports, rec.finished)
	for i, rep := range res.Reports {
		assert.Equal(t, carve.Stages()[i], rep.Stage)
		assert.GreaterOrEqual(t, rep.Attempts, 0)
	}
	prune, _ := res.Report(carve.StagePrune)
	assert.Equal(t, len(res.Prunes), prune.Applied)
	cull, _ := res.Report(carve.StageCull)
	assert.Equal(t, len(res.Collapses), cull.Applied)
}

func TestCarve_IncompleteIsSoft(t *testing.T) {
	p := difficulty.Default()
	p.LoopEdgeCount = 50
	p.LoopMinBackboneDistance = 1
	p.LoopMinStartDelta = 0
	p.CollectibleCount = 100

	res, err := carve.Carve(context.Background(), skeleton(t, builder.Tetrahedron, 1), p, 1)
	require.NoError(t, err)
	inc := res.Incomplete()
	require.Error(t, inc)
	assert.ErrorIs(t, inc, carve.ErrGenerationIncomplete)
	assert.Contains(t, inc.Error(), "loops")
	assert.Contains(t, inc.Error(), "collectibles")
	assert.True(t, verify.Reachable(res.Graph, res.Start, res.End).Reachable)
}

func TestCarve_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := carve.Carve(ctx, nil, difficulty.Default(), 1)
	assert.ErrorIs(t, err, carve.ErrNilSkeleton)

	_, err = carve.Carve(ctx, core.NewGraph(), difficulty.Default(), 1)
	assert.ErrorIs(t, err, carve.ErrEmptySkeleton)

	bad := difficulty.Default()
	bad.OneWayRatio = 3
	_, err = carve.Carve(ctx, skeleton(t, builder.Cube, 1), bad, 1)
	assert.ErrorIs(t, err, difficulty.ErrParam)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	res, err := carve.Carve(cancelled, skeleton(t, builder.Cube, 2), difficulty.Default(), 1)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, context.Canceled))

	assert.Panics(t, func() { carve.WithWorkers(0) })
	assert.Panics(t, func() { carve.WithSampler(nil) })
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "one_way", carve.StageOneWay.String())
	assert.Equal(t, "stage(42)", carve.Stage(42).String())
}
