package level

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polymaze/builder"
	"github.com/katalvlaran/polymaze/difficulty"
	"github.com/katalvlaran/polymaze/maze"
)

// Descriptor names one playable level.
type Descriptor struct {
	Name   string                 `yaml:"name" json:"name" mapstructure:"name"`
	Spec   builder.PolyhedronSpec `yaml:"spec" json:"spec" mapstructure:"spec"`
	Params difficulty.Params      `yaml:"params" json:"params" mapstructure:"params"`
	Seed   uint64                 `yaml:"seed" json:"seed" mapstructure:"seed"`
}

// Maze returns the generation triple of d.
func (d Descriptor) Maze() maze.Descriptor {
	return maze.Descriptor{Spec: d.Spec, Params: d.Params, Seed: d.Seed}
}

// Validate checks the spec and the params.
func (d Descriptor) Validate() error { return d.Maze().Validate() }

// Filename is a stable identifier "<shape>_s<seed>_n<N>", usable as a file
// stem or cache key.
func Filename(d Descriptor) string {
	return fmt.Sprintf("%s_s%d_n%d", d.Spec.Shape, d.Seed, d.Spec.N)
}

type entry struct {
	shape builder.Shape
	n     int
	seed  uint64
}

// catalogue is the built-in campaign, easiest first.
var catalogue = [...]entry{
	{builder.Tetrahedron, 1, 1},
	{builder.Cube, 2, 2},
	{builder.Octahedron, 3, 3},
	{builder.Dodecahedron, 1, 1},
	{builder.Icosahedron, 2, 2},
	{builder.Octahedron, 4, 4},
	{builder.Tetrahedron, 6, 0},
	{builder.Cube, 4, 3},
	{builder.Tetrahedron, 7, 0},
	{builder.Octahedron, 5, 0},
	{builder.Icosahedron, 3, 2},
	{builder.Tetrahedron, 8, 0},
	{builder.Cube, 5, 0},
	{builder.Octahedron, 6, 0},
	{builder.Tetrahedron, 9, 0},
	{builder.Icosahedron, 4, 2},
	{builder.Cube, 6, 1},
	{builder.Octahedron, 7, 0},
	{builder.Cube, 7, 0},
	{builder.Icosahedron, 5, 0},
}

// Catalogue returns the 20 built-in levels. Params ramp from the easy preset
// on the first level to the hard preset on the last.
func Catalogue() []Descriptor {
	out := make([]Descriptor, 0, len(catalogue))
	last := float64(len(catalogue) - 1)
	for i, e := range catalogue {
		d := Descriptor{
			Name:   fmt.Sprintf("level-%02d", i+1),
			Spec:   builder.PolyhedronSpec{Shape: e.shape, N: e.n},
			Params: Ramp(float64(i) / last),
			Seed:   e.seed,
		}
		out = append(out, d)
	}

	return out
}

// Ramp interpolates the difficulty knobs between difficulty.Easy (t=0) and
// difficulty.Hard (t=1). t is clamped to [0,1]; counts are rounded.
func Ramp(t float64) difficulty.Params {
	t = math.Max(0, math.Min(1, t))
	easy, hard := difficulty.Easy(), difficulty.Hard()
	lerp := func(a, b float64) float64 { return a*(1-t) + b*t }
	count := func(a, b int) int { return int(math.Round(lerp(float64(a), float64(b)))) }

	return difficulty.Params{
		BranchLengthBias:        lerp(easy.BranchLengthBias, hard.BranchLengthBias),
		OneWayRatio:             lerp(easy.OneWayRatio, hard.OneWayRatio),
		BacklinkRatio:           lerp(easy.BacklinkRatio, hard.BacklinkRatio),
		LoopEdgeCount:           count(easy.LoopEdgeCount, hard.LoopEdgeCount),
		LoopMinBackboneDistance: count(easy.LoopMinBackboneDistance, hard.LoopMinBackboneDistance),
		LoopMinStartDelta:       lerp(easy.LoopMinStartDelta, hard.LoopMinStartDelta),
		PruneAttempts:           count(easy.PruneAttempts, hard.PruneAttempts),
		StageAttempts:           count(easy.StageAttempts, hard.StageAttempts),
		CullPassThroughNodes:    easy.CullPassThroughNodes || hard.CullPassThroughNodes,
		CollectibleCount:        count(easy.CollectibleCount, hard.CollectibleCount),
	}
}
