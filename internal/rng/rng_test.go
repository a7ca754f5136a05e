package rng_test

import (
	"testing"

	"github.com/katalvlaran/polymaze/internal/rng"
	"github.com/stretchr/testify/assert"
)

func TestNew_Deterministic(t *testing.T) {
	a, b := rng.New(42), rng.New(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNew_DistinctSeeds(t *testing.T) {
	for _, pair := range [][2]uint64{{0, 1}, {1, 2}, {0, 1 << 63}} {
		assert.NotEqual(t, rng.New(pair[0]).Int63(), rng.New(pair[1]).Int63(), "seeds %v", pair)
	}
	assert.NotZero(t, rng.Mix(0, 0))
}

func TestMix_Avalanche(t *testing.T) {
	assert.NotEqual(t, rng.Mix(1, 0), rng.Mix(2, 0))
	assert.NotEqual(t, rng.Mix(1, 0), rng.Mix(1, 1))
	assert.Equal(t, rng.Mix(7, 3), rng.Mix(7, 3))
}

func TestPick(t *testing.T) {
	src := rng.New(3)
	assert.Equal(t, -1, rng.Pick(src, 0))
	assert.Equal(t, 0, rng.Pick(src, 1))
	for i := 0; i < 100; i++ {
		got := rng.Pick(src, 5)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, 5)
	}
}

func TestShuffle_Permutation(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7}
	rng.Shuffle(rng.New(11), a)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, a)

	b := []int{0, 1, 2, 3, 4, 5, 6, 7}
	rng.Shuffle(rng.New(11), b)
	assert.Equal(t, a, b)
}
