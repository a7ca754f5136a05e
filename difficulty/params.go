// Package difficulty holds the validated knobs that steer maze carving.
//
// Params is a plain value: it is built once (Default, a preset or New with
// options), validated, and then only read by the carver. Validation failures
// are *ParamError values matching ErrParam, raised before generation starts.
package difficulty

import (
	"errors"
	"fmt"
	"math"
)

// ErrParam is matched (errors.Is) by every *ParamError.
var ErrParam = errors.New("difficulty: parameter out of range")

// ParamError reports the first invalid field found by Validate.
type ParamError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("difficulty: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrParam) hold.
func (e *ParamError) Unwrap() error { return ErrParam }

// Params are the carving knobs. Field tags let level files and the CLI load
// them through yaml, json or viper.
type Params struct {
	// BranchLengthBias in [0,1]: chance the spanning tree keeps extending its
	// newest branch. High values give long corridors, low values bushy trees.
	BranchLengthBias float64 `yaml:"branch_length_bias" json:"branch_length_bias" mapstructure:"branch_length_bias"`
	// OneWayRatio in [0,1]: upper bound on the fraction of one-way edges.
	OneWayRatio float64 `yaml:"one_way_ratio" json:"one_way_ratio" mapstructure:"one_way_ratio"`
	// BacklinkRatio in [0,1]: share of one-way conversions that point back
	// toward the start.
	BacklinkRatio float64 `yaml:"backlink_ratio" json:"backlink_ratio" mapstructure:"backlink_ratio"`
	// LoopEdgeCount >= 0: loops requested on top of the spanning tree.
	LoopEdgeCount int `yaml:"loop_edge_count" json:"loop_edge_count" mapstructure:"loop_edge_count"`
	// LoopMinBackboneDistance > 0: minimum tree hop distance between the two
	// endpoints of a loop edge.
	LoopMinBackboneDistance int `yaml:"loop_min_backbone_distance" json:"loop_min_backbone_distance" mapstructure:"loop_min_backbone_distance"`
	// LoopMinStartDelta >= 0: minimum difference of the endpoints' distances
	// from start, in edge-weight units.
	LoopMinStartDelta float64 `yaml:"loop_min_start_delta" json:"loop_min_start_delta" mapstructure:"loop_min_start_delta"`
	// PruneAttempts > 0: candidate budget of the pruning stage.
	PruneAttempts int `yaml:"prune_attempts" json:"prune_attempts" mapstructure:"prune_attempts"`
	// StageAttempts > 0: retry budget per requested loop and per one-way edge.
	StageAttempts int `yaml:"stage_attempts" json:"stage_attempts" mapstructure:"stage_attempts"`
	// CullPassThroughNodes enables the pass-through collapse stage.
	CullPassThroughNodes bool `yaml:"cull_pass_through_nodes" json:"cull_pass_through_nodes" mapstructure:"cull_pass_through_nodes"`
	// CollectibleCount >= 0: waypoints placed after carving.
	CollectibleCount int `yaml:"collectible_count" json:"collectible_count" mapstructure:"collectible_count"`
}

// Default returns the medium difficulty knobs.
func Default() Params {
	return Params{
		BranchLengthBias:        0.75,
		OneWayRatio:             0.1,
		BacklinkRatio:           0.5,
		LoopEdgeCount:           2,
		LoopMinBackboneDistance: 4,
		LoopMinStartDelta:       1.0,
		PruneAttempts:           20,
		StageAttempts:           30,
		CullPassThroughNodes:    true,
		CollectibleCount:        0,
	}
}

// Validate returns the first out-of-domain field as a *ParamError, or nil.
func (p Params) Validate() error {
	ratios := []struct {
		name string
		v    float64
	}{
		{"branch_length_bias", p.BranchLengthBias},
		{"one_way_ratio", p.OneWayRatio},
		{"backlink_ratio", p.BacklinkRatio},
	}
	for _, r := range ratios {
		if !(r.v >= 0 && r.v <= 1) {
			return &ParamError{Field: r.name, Value: r.v, Reason: "must be in [0,1]"}
		}
	}

	budgets := []struct {
		name string
		v    int
	}{
		{"loop_min_backbone_distance", p.LoopMinBackboneDistance},
		{"prune_attempts", p.PruneAttempts},
		{"stage_attempts", p.StageAttempts},
	}
	for _, b := range budgets {
		if b.v <= 0 {
			return &ParamError{Field: b.name, Value: b.v, Reason: "must be > 0"}
		}
	}

	if p.LoopEdgeCount < 0 {
		return &ParamError{Field: "loop_edge_count", Value: p.LoopEdgeCount, Reason: "must be >= 0"}
	}
	if p.CollectibleCount < 0 {
		return &ParamError{Field: "collectible_count", Value: p.CollectibleCount, Reason: "must be >= 0"}
	}
	if !(p.LoopMinStartDelta >= 0) || math.IsInf(p.LoopMinStartDelta, 0) {
		return &ParamError{Field: "loop_min_start_delta", Value: p.LoopMinStartDelta, Reason: "must be finite and >= 0"}
	}

	return nil
}
