// SPDX-License-Identifier: MIT
// Package: polymaze/builder
//
// options.go: functional options for Skeleton.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Skeleton itself never panics.
//   • Later options override earlier ones.

package builder

import (
	"fmt"
	"math"
)

// Option customizes Skeleton by mutating a builderConfig before construction.
type Option func(*builderConfig)

// WithScale sets the edge length of the underlying solid. Room positions and
// therefore edge weights scale linearly with it.
// Panics unless scale is finite and > 0.
func WithScale(scale float64) Option {
	if !(scale > 0) || math.IsInf(scale, 0) {
		panic(fmt.Sprintf("builder: WithScale(%v): scale must be finite and > 0", scale))
	}
	return func(c *builderConfig) {
		c.scale = scale
	}
}

// WithWeightFactor multiplies every edge weight by factor. Factors below 1
// would break the weight >= distance guarantee and are rejected.
// Panics unless factor is finite and >= 1.
func WithWeightFactor(factor float64) Option {
	if !(factor >= 1) || math.IsInf(factor, 0) {
		panic(fmt.Sprintf("builder: WithWeightFactor(%v): factor must be finite and >= 1", factor))
	}
	return func(c *builderConfig) {
		c.weightFactor = factor
	}
}
