package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/polymaze/builder"
	"github.com/katalvlaran/polymaze/difficulty"
	"github.com/katalvlaran/polymaze/level"
	"github.com/katalvlaran/polymaze/maze"
)

// mazeFlags selects one maze: either a catalogue level or an explicit
// shape/N/seed with a preset or params file.
type mazeFlags struct {
	level   string
	shape   string
	n       int
	seed    uint64
	preset  string
	params  string
	workers int
}

func (m *mazeFlags) register(f *pflag.FlagSet) {
	f.StringVar(&m.level, "level", "", "catalogue level name (e.g. level-07); overrides shape/n/seed/preset")
	f.StringVar(&m.shape, "shape", "cube", "polyhedron: "+shapeNames())
	f.IntVarP(&m.n, "n", "n", 3, "rooms per polyhedron edge (subdivision)")
	f.Uint64Var(&m.seed, "seed", 1, "generation seed")
	f.StringVar(&m.preset, "preset", "medium", "difficulty preset: "+strings.Join(difficulty.PresetNames(), ", "))
	f.StringVar(&m.params, "params", "", "difficulty file (yaml/json/toml); replaces --preset")
	f.IntVar(&m.workers, "workers", 4, "verification workers")
}

// descriptor resolves the flags into a validated level descriptor.
func (m *mazeFlags) descriptor() (level.Descriptor, error) {
	if m.level != "" {
		for _, d := range level.Catalogue() {
			if d.Name == m.level {
				return d, nil
			}
		}
		return level.Descriptor{}, fmt.Errorf("unknown level %q", m.level)
	}

	shape, err := builder.ParseShape(m.shape)
	if err != nil {
		return level.Descriptor{}, err
	}
	var params difficulty.Params
	if m.params != "" {
		params, err = level.LoadParams(m.params)
	} else {
		params, err = difficulty.Preset(m.preset)
	}
	if err != nil {
		return level.Descriptor{}, err
	}

	d := level.Descriptor{Spec: builder.PolyhedronSpec{Shape: shape, N: m.n}, Params: params, Seed: m.seed}
	d.Name = level.Filename(d)
	if err := d.Validate(); err != nil {
		return level.Descriptor{}, err
	}

	return d, nil
}

func (m *mazeFlags) options(extra ...maze.Option) []maze.Option {
	if m.workers <= 0 {
		m.workers = 1
	}
	return append([]maze.Option{maze.WithWorkers(m.workers)}, extra...)
}

func shapeNames() string {
	names := make([]string, 0, len(builder.Shapes()))
	for _, s := range builder.Shapes() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
