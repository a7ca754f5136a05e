package maze

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/polymaze/builder"
	"github.com/katalvlaran/polymaze/carve"
	"github.com/katalvlaran/polymaze/difficulty"
	"github.com/katalvlaran/polymaze/internal/logging"
	"github.com/katalvlaran/polymaze/verify"
)

const tracerName = "github.com/katalvlaran/polymaze/maze"

// Option configures Generate.
type Option func(*config)

type config struct {
	log      logging.Logger
	carve    []carve.Option
	skeleton []builder.Option
}

// WithLogger sets the structured logger for the whole pipeline. Without it
// (or with nil) Generate uses the logger carried by ctx.
func WithLogger(l logging.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithObserver forwards carving stage callbacks to o.
func WithObserver(o carve.Observer) Option {
	return func(c *config) { c.carve = append(c.carve, carve.WithObserver(o)) }
}

// WithWorkers bounds the goroutines used for speculative verification.
// Panics if n <= 0.
func WithWorkers(n int) Option {
	opt := carve.WithWorkers(n)
	return func(c *config) { c.carve = append(c.carve, opt) }
}

// WithSkeletonOptions passes geometry options (scale, weight factor) to the
// skeleton builder.
func WithSkeletonOptions(opts ...builder.Option) Option {
	return func(c *config) { c.skeleton = append(c.skeleton, opts...) }
}

// Generate builds the skeleton for spec, carves it with params and seed, and
// freezes the result.
//
// Steps:
//  1. Validate spec (builder.ErrConstruction) and params (difficulty.ErrParam)
//     before any work.
//  2. Build the skeleton.
//  3. Carve it.
//  4. Solve the carved maze once and freeze everything into a Model.
//
// The model is a pure function of (spec, params, seed). A stage falling short
// of its request is not an error: see Model.Incomplete.
func Generate(ctx context.Context, spec builder.PolyhedronSpec, params difficulty.Params, seed uint64, opts ...Option) (*Model, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	desc := Descriptor{Spec: spec, Params: params, Seed: seed}

	// 1) Reject bad input before building anything.
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.log == nil {
		cfg.log = logging.FromContext(ctx)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "maze.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("polymaze.spec", spec.String()),
		attribute.Int64("polymaze.seed", int64(seed)),
	)
	log := cfg.log.With(logging.String("spec", spec.String()), logging.Uint64("seed", seed))
	ctx = logging.ContextWithLogger(ctx, log)

	fail := func(err error) (*Model, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(ctx, "maze generation failed", logging.Err(err))
		return nil, err
	}

	// 2) Skeleton.
	skel, err := builder.Skeleton(spec, cfg.skeleton...)
	if err != nil {
		return fail(err)
	}

	// 3) Carve.
	res, err := carve.Carve(ctx, skel, params, seed, cfg.carve...)
	if err != nil {
		return fail(err)
	}

	// 4) Solve and freeze.
	sol := verify.Reachable(res.Graph, res.Start, res.End)
	if !sol.Reachable {
		return fail(fmt.Errorf("%w: %s", ErrUnsolvable, desc))
	}
	m := &Model{
		g:            res.Graph,
		desc:         desc,
		start:        res.Start,
		end:          res.End,
		collectibles: res.Collectibles,
		backbone:     res.Backbone,
		solution:     sol.Path,
		solutionCost: sol.Cost,
		reports:      res.Reports,
		prunes:       res.Prunes,
		collapses:    res.Collapses,
		incomplete:   res.Incomplete(),
	}

	span.SetAttributes(
		attribute.Int("polymaze.vertices", m.VertexCount()),
		attribute.Int("polymaze.edges", m.EdgeCount()),
	)
	fields := []logging.Field{
		logging.Int("vertices", m.VertexCount()),
		logging.Int("edges", m.EdgeCount()),
		logging.Int("one_way", m.OneWayCount()),
		logging.Int("solution_moves", m.SolutionLength()),
	}
	if m.incomplete != nil {
		log.Warn(ctx, "maze generated with skipped stages", append(fields, logging.Err(m.incomplete))...)
	} else {
		log.Info(ctx, "maze generated", fields...)
	}

	return m, nil
}

// Regenerate rebuilds the maze a persisted descriptor stands for.
func Regenerate(ctx context.Context, d Descriptor, opts ...Option) (*Model, error) {
	return Generate(ctx, d.Spec, d.Params, d.Seed, opts...)
}
