package difficulty

import (
	"fmt"
	"sort"
	"strings"
)

// Easy favours long straight corridors and keeps every edge bidirectional.
func Easy() Params {
	p := Default()
	p.BranchLengthBias = 0.9
	p.OneWayRatio = 0
	p.BacklinkRatio = 0
	p.LoopEdgeCount = 0
	p.PruneAttempts = 5

	return p
}

// Medium is Default.
func Medium() Params { return Default() }

// Hard grows bushy trees with many one-way edges, extra loops and
// collectibles.
func Hard() Params {
	p := Default()
	p.BranchLengthBias = 0.5
	p.OneWayRatio = 0.25
	p.BacklinkRatio = 0.6
	p.LoopEdgeCount = 4
	p.LoopMinBackboneDistance = 6
	p.LoopMinStartDelta = 2
	p.PruneAttempts = 60
	p.StageAttempts = 40
	p.CollectibleCount = 3

	return p
}

var presets = map[string]func() Params{
	"easy":   Easy,
	"medium": Medium,
	"hard":   Hard,
}

// PresetNames lists the preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Preset returns a named preset, case-insensitively.
func Preset(name string) (Params, error) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Params{}, &ParamError{
			Field:  "preset",
			Value:  name,
			Reason: fmt.Sprintf("unknown preset, want one of %s", strings.Join(PresetNames(), ", ")),
		}
	}

	return fn(), nil
}
