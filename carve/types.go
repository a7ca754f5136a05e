package carve

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/polymaze/core"
)

var (
	// ErrGenerationIncomplete is the soft condition reported by
	// Result.Incomplete when a stage fell short of its request after
	// exhausting its budget. The maze is still valid and solvable.
	ErrGenerationIncomplete = errors.New("carve: generation incomplete")

	// ErrNilSkeleton is returned when Carve receives no skeleton.
	ErrNilSkeleton = errors.New("carve: skeleton is nil")

	// ErrEmptySkeleton is returned for a skeleton with no vertices.
	ErrEmptySkeleton = errors.New("carve: skeleton has no vertices")
)

// Stage identifies one carving stage.
type Stage int

const (
	StageBackbone Stage = iota
	StageLoops
	StageOneWay
	StagePrune
	StageCull
	StageCollectibles
)

var stageNames = [...]string{"backbone", "loops", "one_way", "prune", "cull", "collectibles"}

// Stages lists every stage in execution order.
func Stages() []Stage {
	return []Stage{StageBackbone, StageLoops, StageOneWay, StagePrune, StageCull, StageCollectibles}
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// StageReport summarizes one stage run.
type StageReport struct {
	Stage     Stage `json:"stage" yaml:"stage"`
	Requested int   `json:"requested" yaml:"requested"`
	Applied   int   `json:"applied" yaml:"applied"`
	Attempts  int   `json:"attempts" yaml:"attempts"`
	// Skipped marks a stage that gave up after its budget, short of Requested.
	Skipped bool `json:"skipped" yaml:"skipped"`
}

// PruneRecord is a committed intersection prune. Replaying the checks on the
// graph before the removal must still find To reachable from the start.
type PruneRecord struct {
	Edge core.Edge `json:"edge" yaml:"edge"`
	// From is the endpoint that loses the edge; To is the intersection it entered.
	From core.VertexID `json:"from" yaml:"from"`
	To   core.VertexID `json:"to" yaml:"to"`
	// ProbeCost is the start→To cost with the edge penalized, below
	// verify.PenaltyWeight by construction.
	ProbeCost float64 `json:"probe_cost" yaml:"probe_cost"`
}

// CollapseRecord is a committed pass-through collapse: In and Out were
// replaced by Merged and Vertex was removed.
type CollapseRecord struct {
	Vertex core.VertexID `json:"vertex" yaml:"vertex"`
	In     core.Edge     `json:"in" yaml:"in"`
	Out    core.Edge     `json:"out" yaml:"out"`
	Merged core.Edge     `json:"merged" yaml:"merged"`
	// Relaxed lists one-way edges made bidirectional so the smaller maze
	// stays within OneWayRatio.
	Relaxed []core.EdgeID `json:"relaxed,omitempty" yaml:"relaxed,omitempty"`
}

// Observer receives stage lifecycle callbacks. Implementations must be cheap
// and must not retain the reports' graph state.
type Observer interface {
	StageStarted(stage Stage)
	StageFinished(report StageReport, elapsed time.Duration)
}

// Result is the outcome of one carving pass.
type Result struct {
	// Graph is the carved maze. Callers take ownership.
	Graph        *core.Graph
	Start, End   core.VertexID
	Backbone     []core.VertexID // tree path start→end after the backbone stage
	Collectibles []core.VertexID // sorted
	Reports      []StageReport
	Prunes       []PruneRecord
	Collapses    []CollapseRecord
}

// Incomplete returns an error matching ErrGenerationIncomplete naming every
// skipped stage, or nil when all stages met their request.
func (r *Result) Incomplete() error {
	var skipped []string
	for _, rep := range r.Reports {
		if rep.Skipped {
			skipped = append(skipped, fmt.Sprintf("%s %d/%d", rep.Stage, rep.Applied, rep.Requested))
		}
	}
	if len(skipped) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrGenerationIncomplete, strings.Join(skipped, ", "))
}

// Report returns the report of stage s.
func (r *Result) Report(s Stage) (StageReport, bool) {
	for _, rep := range r.Reports {
		if rep.Stage == s {
			return rep, true
		}
	}
	return StageReport{}, false
}
