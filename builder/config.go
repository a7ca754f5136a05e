// SPDX-License-Identifier: MIT
// Package: polymaze/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • scale        = DefaultScale  (unit edge length)
//   • weightFactor = 1.0           (weight equals Euclidean distance)

package builder

// DefaultScale is the solid edge length used when WithScale is absent.
const DefaultScale = 1.0

// builderConfig aggregates the knobs used by Skeleton.
// It is passed by value once options are applied.
type builderConfig struct {
	scale        float64
	weightFactor float64
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		scale:        DefaultScale,
		weightFactor: 1.0,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
