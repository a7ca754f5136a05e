package carve

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/polymaze/core"
	"github.com/katalvlaran/polymaze/difficulty"
	"github.com/katalvlaran/polymaze/internal/logging"
)

const tracerName = "github.com/katalvlaran/polymaze/carve"

// state is the mutable context of one carving pass. Stages run strictly in
// sequence on it; only verification fans out, and only over a read-only maze.
type state struct {
	ctx     context.Context
	skel    *core.Graph // never mutated
	maze    *core.Graph
	params  difficulty.Params
	src     Sampler
	log     logging.Logger
	workers int

	start, end   core.VertexID
	backbone     []core.VertexID
	collectibles []core.VertexID
	prunes       []PruneRecord
	collapses    []CollapseRecord
}

// stageFunc runs one stage. A returned error aborts the pass; falling short
// of the request is reported through StageReport.Skipped instead.
type stageFunc func(*state) (StageReport, error)

var pipeline = []struct {
	stage Stage
	run   stageFunc
}{
	{StageBackbone, backbone},
	{StageLoops, loops},
	{StageOneWay, oneWay},
	{StagePrune, prune},
	{StageCull, cull},
	{StageCollectibles, collectibles},
}

// Carve runs one full carving pass over skeleton.
//
// skeleton is read, never mutated. The pass is a pure function of
// (skeleton, params, seed) unless WithSampler replaces the generator.
// ctx is checked between stages; a cancelled pass returns ctx.Err() and no
// result. Stages that fall short of their request do not fail the pass: see
// Result.Incomplete.
//
// Error Conditions:
//   - ErrNilSkeleton, ErrEmptySkeleton: unusable skeleton.
//   - difficulty.ErrParam: params fail validation.
//   - spantree.ErrDisconnected (wrapped): the skeleton is not connected.
//   - ctx.Err(): cancelled.
func Carve(ctx context.Context, skeleton *core.Graph, params difficulty.Params, seed uint64, opts ...Option) (*Result, error) {
	if skeleton == nil {
		return nil, ErrNilSkeleton
	}
	if skeleton.VertexCount() == 0 {
		return nil, ErrEmptySkeleton
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := newConfig(seed, opts...)
	if cfg.log == nil {
		cfg.log = logging.FromContext(ctx)
	}
	st := &state{
		ctx:     ctx,
		skel:    skeleton,
		params:  params,
		src:     cfg.sampler,
		log:     cfg.log,
		workers: cfg.workers,
	}
	tracer := otel.Tracer(tracerName)

	reports := make([]StageReport, 0, len(pipeline))
	for _, p := range pipeline {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rep, err := st.runStage(tracer, cfg.observer, p.stage, p.run)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	return &Result{
		Graph:        st.maze,
		Start:        st.start,
		End:          st.end,
		Backbone:     st.backbone,
		Collectibles: st.collectibles,
		Reports:      reports,
		Prunes:       st.prunes,
		Collapses:    st.collapses,
	}, nil
}

// runStage wraps a stage with a span, observer callbacks and logging.
func (st *state) runStage(tracer trace.Tracer, obs Observer, stage Stage, run stageFunc) (StageReport, error) {
	parent := st.ctx
	ctx, span := tracer.Start(parent, "carve."+stage.String())
	defer span.End()
	st.ctx = ctx
	defer func() { st.ctx = parent }()

	if obs != nil {
		obs.StageStarted(stage)
	}
	began := time.Now()
	rep, err := run(st)
	rep.Stage = stage
	elapsed := time.Since(began)

	span.SetAttributes(
		attribute.Int("polymaze.requested", rep.Requested),
		attribute.Int("polymaze.applied", rep.Applied),
		attribute.Int("polymaze.attempts", rep.Attempts),
		attribute.Bool("polymaze.skipped", rep.Skipped),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		st.log.Error(ctx, "carve stage failed", logging.String("stage", stage.String()), logging.Err(err))
		return rep, fmt.Errorf("carve: %s: %w", stage, err)
	}
	if obs != nil {
		obs.StageFinished(rep, elapsed)
	}

	fields := []logging.Field{
		logging.String("stage", stage.String()),
		logging.Int("requested", rep.Requested),
		logging.Int("applied", rep.Applied),
		logging.Int("attempts", rep.Attempts),
		logging.Any("elapsed", elapsed),
	}
	if rep.Skipped {
		st.log.Warn(ctx, "carve stage fell short of its request", fields...)
	} else {
		st.log.Debug(ctx, "carve stage done", fields...)
	}

	return rep, nil
}

// allowedOneWay is the largest one-way count withinRatio accepts for total edges.
func allowedOneWay(total int, ratio float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(ratio*float64(total) + 1e-12))
}

// withinRatio reports whether oneWay/total stays at or below ratio.
func withinRatio(oneWay, total int, ratio float64) bool {
	if total == 0 {
		return oneWay == 0
	}
	return float64(oneWay) <= ratio*float64(total)+1e-12
}
