// Package rng centralizes deterministic random generation for maze carving.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Injectability: stages consume the narrow Source interface so tests can
//     script exact sampling sequences.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share a Source across goroutines.
package rng

import "math/rand"

// Source is the sampling surface the carver depends on. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform int in [0,n). It panics if n <= 0.
	Intn(n int) int
	// Float64 returns a uniform float in [0,1).
	Float64() float64
}

// New returns a deterministic *rand.Rand for seed. The seed is mixed once so
// that neighbouring seeds (0 included) produce unrelated streams.
//
// Complexity: O(1).
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(Mix(seed, 0))))
}

// Mix folds a stream identifier into a parent seed with a SplitMix64 finalizer.
// Complexity: O(1).
func Mix(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// Chance reports true with probability p, consuming exactly one Float64 draw.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Pick returns a uniformly chosen index into a slice of length n, or -1 when n <= 0.
// No draw is consumed for n <= 1.
func Pick(src Source, n int) int {
	switch {
	case n <= 0:
		return -1
	case n == 1:
		return 0
	default:
		return src.Intn(n)
	}
}

// Shuffle performs an in-place Fisher–Yates shuffle of a.
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](src Source, a []T) {
	for i := len(a) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
