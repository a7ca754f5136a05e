package difficulty_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymaze/difficulty"
)

func TestDefaultAndPresets_Valid(t *testing.T) {
	require.NoError(t, difficulty.Default().Validate())
	for _, name := range difficulty.PresetNames() {
		p, err := difficulty.Preset(name)
		require.NoError(t, err, name)
		assert.NoError(t, p.Validate(), name)
	}
	assert.Equal(t, []string{"easy", "hard", "medium"}, difficulty.PresetNames())

	p, err := difficulty.Preset(" HARD ")
	require.NoError(t, err)
	assert.Equal(t, difficulty.Hard(), p)
	assert.Equal(t, difficulty.Default(), difficulty.Medium())

	_, err = difficulty.Preset("nightmare")
	assert.ErrorIs(t, err, difficulty.ErrParam)
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		opt   difficulty.Option
		field string
	}{
		{"bias above one", difficulty.WithBranchLengthBias(1.01), "branch_length_bias"},
		{"bias NaN", difficulty.WithBranchLengthBias(math.NaN()), "branch_length_bias"},
		{"negative one-way ratio", difficulty.WithOneWayRatio(-0.1), "one_way_ratio"},
		{"backlink ratio", difficulty.WithBacklinkRatio(2), "backlink_ratio"},
		{"negative loops", difficulty.WithLoops(-1, 4, 1), "loop_edge_count"},
		{"zero backbone distance", difficulty.WithLoops(1, 0, 1), "loop_min_backbone_distance"},
		{"infinite start delta", difficulty.WithLoops(1, 4, math.Inf(1)), "loop_min_start_delta"},
		{"negative start delta", difficulty.WithLoops(1, 4, -1), "loop_min_start_delta"},
		{"zero prune budget", difficulty.WithPruneAttempts(0), "prune_attempts"},
		{"zero stage budget", difficulty.WithStageAttempts(0), "stage_attempts"},
		{"negative collectibles", difficulty.WithCollectibles(-2), "collectible_count"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p, err := difficulty.New(tc.opt)
			require.Error(t, err)
			assert.Equal(t, difficulty.Params{}, p)
			assert.ErrorIs(t, err, difficulty.ErrParam)

			var pe *difficulty.ParamError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.field, pe.Field)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestNew_AppliesOptions(t *testing.T) {
	p, err := difficulty.New(
		difficulty.WithOneWayRatio(0),
		difficulty.WithLoops(0, 1, 0),
		difficulty.WithCulling(false),
		difficulty.WithCollectibles(2),
		nil,
	)
	require.NoError(t, err)
	assert.Zero(t, p.OneWayRatio)
	assert.Zero(t, p.LoopEdgeCount)
	assert.False(t, p.CullPassThroughNodes)
	assert.Equal(t, 2, p.CollectibleCount)
	assert.Equal(t, difficulty.Default().PruneAttempts, p.PruneAttempts)
}
