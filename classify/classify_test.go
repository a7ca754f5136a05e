package classify_test

import (
	"testing"

	"github.com/katalvlaran/polymaze/classify"
	"github.com/katalvlaran/polymaze/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tee builds
//
//	0 ─ 1 ─ 2 ─ 3
//	        |
//	        4        5 (isolated)
//
// on a unit lattice.
func tee(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	pos := []core.Vec3{core.V(0, 0, 0), core.V(1, 0, 0), core.V(2, 0, 0), core.V(3, 0, 0), core.V(2, -1, 0), core.V(9, 9, 9)}
	for i, p := range pos {
		require.NoError(t, g.AddVertex(core.VertexID(i), p, 0))
	}
	for _, pair := range [][2]core.VertexID{{0, 1}, {1, 2}, {2, 3}, {2, 4}} {
		_, err := g.AddEdge(pair[0], pair[1], 1)
		require.NoError(t, err)
	}

	return g
}

func TestClassify_Roles(t *testing.T) {
	g := tee(t)
	got := classify.Classify(g)

	want := map[core.VertexID]classify.Role{
		0: classify.Loose,
		1: classify.PassThrough,
		2: classify.Intersection,
		3: classify.Loose,
		4: classify.Loose,
		5: classify.Isolated,
	}
	for id, role := range want {
		assert.Equal(t, role, got[id].Role, "vertex %d", id)
	}
	assert.Equal(t, classify.Info{ID: 2, In: 3, Out: 3, Degree: 3, Role: classify.Intersection}, got[2])

	assert.Equal(t, []core.VertexID{0, 3, 4}, classify.LooseEnds(g))
	assert.Equal(t, []core.VertexID{1}, classify.PassThroughs(g))
	assert.Equal(t, []core.VertexID{1, 2}, classify.Intersections(g))

	_, err := classify.Vertex(g, 77)
	assert.ErrorIs(t, err, classify.ErrVertexNotFound)
}

func TestClassify_DirectedPassThrough(t *testing.T) {
	cases := []struct {
		name     string
		from01   core.VertexID // tail of edge 0-1, or -1 for bidirectional
		from12   core.VertexID
		role     classify.Role
		fwd, bwd bool
		in, out  int
	}{
		{"both bidirectional", -1, -1, classify.PassThrough, true, true, 2, 2},
		{"one-way chain forward", 0, 1, classify.PassThrough, true, false, 1, 1},
		{"one-way chain backward", 1, 2, classify.PassThrough, false, true, 1, 1},
		{"mixed", 0, -1, classify.PassThrough, true, false, 2, 1},
		{"sink", 0, 2, classify.Intersection, false, false, 2, 0},
		{"source", 1, 1, classify.Intersection, false, false, 0, 2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			for i := 0; i < 3; i++ {
				require.NoError(t, g.AddVertex(core.VertexID(i), core.V(float64(i), 0, 0), 0))
			}
			e01, err := g.AddEdge(0, 1, 1)
			require.NoError(t, err)
			e12, err := g.AddEdge(1, 2, 1)
			require.NoError(t, err)
			if tc.from01 >= 0 {
				require.NoError(t, g.SetDirection(e01, tc.from01, false))
			}
			if tc.from12 >= 0 {
				require.NoError(t, g.SetDirection(e12, tc.from12, false))
			}

			info, err := classify.Vertex(g, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.role, info.Role)
			assert.Equal(t, tc.in, info.In)
			assert.Equal(t, tc.out, info.Out)

			c, ok := classify.PassThroughPair(g, 1)
			assert.Equal(t, tc.role == classify.PassThrough, ok)
			if ok {
				assert.Equal(t, core.VertexID(0), c.A)
				assert.Equal(t, core.VertexID(2), c.B)
				assert.Equal(t, tc.fwd, c.Forward)
				assert.Equal(t, tc.bwd, c.Backward)
				assert.Equal(t, tc.fwd && tc.bwd, c.Bidirectional())
			}
		})
	}
}

func TestIsJunction(t *testing.T) {
	g := tee(t)
	assert.False(t, classify.IsJunction(g, 1), "straight corridor")
	assert.True(t, classify.IsJunction(g, 2), "three-way")
	assert.True(t, classify.IsJunction(g, 0), "dead end")
	assert.False(t, classify.IsJunction(g, 99))

	// Bend the corridor at 3: 2-3-6 with a right angle.
	require.NoError(t, g.AddVertex(6, core.V(3, 1, 0), 0))
	_, err := g.AddEdge(3, 6, 1)
	require.NoError(t, err)
	assert.True(t, classify.IsJunction(g, 3), "corner")
}

func TestBridges(t *testing.T) {
	g := tee(t)
	all := map[core.EdgeID]bool{}
	for _, e := range g.Edges() {
		all[e.ID] = true
	}
	assert.Equal(t, all, classify.Bridges(g), "a tree is all bridges")

	// Close 0-1-2 into a cycle through 6 and orient one side of it. Direction
	// does not matter, only the cycle does.
	//
	//	0 ─ 1 ─ 2 ─ 3
	//	 \      |\
	//	  6 ────┘ 4
	require.NoError(t, g.AddVertex(6, core.V(1, -1, 0), 0))
	e06, err := g.AddEdge(0, 6, 2)
	require.NoError(t, err)
	e62, err := g.AddEdge(6, 2, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetDirection(e62, 2, false))

	e01, _ := g.EdgeBetween(0, 1)
	e12, _ := g.EdgeBetween(1, 2)
	e23, _ := g.EdgeBetween(2, 3)
	e24, _ := g.EdgeBetween(2, 4)
	got := classify.Bridges(g)
	assert.Equal(t, map[core.EdgeID]bool{e23.ID: true, e24.ID: true}, got)
	for _, id := range []core.EdgeID{e01.ID, e12.ID, e06, e62} {
		assert.False(t, got[id], "edge %d is on the cycle", id)
	}

	assert.Empty(t, classify.Bridges(core.NewGraph()))
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "pass-through", classify.PassThrough.String())
	assert.Equal(t, "loose", classify.Loose.String())
	assert.Equal(t, "role(9)", classify.Role(9).String())
}
