package observability

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/polymaze/carve"
	"github.com/katalvlaran/polymaze/maze"
)

// Generation outcomes recorded by ObserveGeneration.
const (
	OutcomeComplete   = "complete"
	OutcomeIncomplete = "incomplete"
	OutcomeFailed     = "failed"
)

// CarveCollector bundles the Prometheus metrics of maze generation. It
// implements carve.Observer, so it can be passed to maze.WithObserver as is.
// A nil *CarveCollector records nothing.
type CarveCollector struct {
	gatherer prometheus.Gatherer

	StageAttempts  *prometheus.CounterVec
	StageCommits   *prometheus.CounterVec
	StageSkipped   *prometheus.CounterVec
	StageDurations *prometheus.HistogramVec

	Generations         *prometheus.CounterVec
	GenerationDurations prometheus.Histogram
	MazeVertices        prometheus.Histogram
	MazeEdges           prometheus.Histogram
}

var _ carve.Observer = (*CarveCollector)(nil)

// NewCarveCollector registers the generation metrics against reg, defaulting
// to the global Prometheus registry when nil. Registering twice against the
// same registry reuses the existing collectors.
func NewCarveCollector(reg prometheus.Registerer) (*CarveCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	c := &CarveCollector{gatherer: gatherer}

	var err error
	stageCounter := func(name, help string) *prometheus.CounterVec {
		if err != nil {
			return nil
		}
		var vec *prometheus.CounterVec
		vec, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, []string{"stage"}), name)
		return vec
	}
	histogram := func(name, help string, buckets []float64) prometheus.Histogram {
		if err != nil {
			return nil
		}
		var h prometheus.Histogram
		h, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets}), name)
		return h
	}

	c.StageAttempts = stageCounter("polymaze_stage_attempts_total", "Candidates sampled per carving stage.")
	c.StageCommits = stageCounter("polymaze_stage_commits_total", "Edits committed per carving stage.")
	c.StageSkipped = stageCounter("polymaze_stage_skipped_total", "Carving stages that exhausted their budget short of the request.")
	if err != nil {
		return nil, err
	}

	c.StageDurations, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "polymaze_stage_duration_seconds",
		Help:    "Wall time per carving stage in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"stage"}), "polymaze_stage_duration_seconds")
	if err != nil {
		return nil, err
	}
	c.Generations, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "polymaze_generations_total",
		Help: "Maze generations, labeled by outcome (complete, incomplete, failed).",
	}, []string{"outcome"}), "polymaze_generations_total")
	if err != nil {
		return nil, err
	}

	c.GenerationDurations = histogram("polymaze_generation_duration_seconds", "Wall time of a full maze generation in seconds.",
		prometheus.ExponentialBuckets(0.001, 4, 8))
	c.MazeVertices = histogram("polymaze_maze_vertices", "Rooms in generated mazes.", prometheus.ExponentialBuckets(4, 2, 12))
	c.MazeEdges = histogram("polymaze_maze_edges", "Corridors in generated mazes.", prometheus.ExponentialBuckets(4, 2, 12))
	if err != nil {
		return nil, err
	}

	return c, nil
}

// StageStarted satisfies carve.Observer.
func (c *CarveCollector) StageStarted(carve.Stage) {}

// StageFinished records the report of one carving stage.
func (c *CarveCollector) StageFinished(rep carve.StageReport, elapsed time.Duration) {
	if c == nil {
		return
	}
	stage := rep.Stage.String()
	c.StageAttempts.WithLabelValues(stage).Add(float64(rep.Attempts))
	c.StageCommits.WithLabelValues(stage).Add(float64(rep.Applied))
	if rep.Skipped {
		c.StageSkipped.WithLabelValues(stage).Inc()
	}
	c.StageDurations.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// ObserveGeneration records the outcome of one maze.Generate call. m may be
// nil when err is set.
func (c *CarveCollector) ObserveGeneration(m *maze.Model, elapsed time.Duration, err error) {
	if c == nil {
		return
	}
	c.GenerationDurations.Observe(elapsed.Seconds())
	switch {
	case err != nil || m == nil:
		c.Generations.WithLabelValues(OutcomeFailed).Inc()
		return
	case m.Incomplete() != nil:
		c.Generations.WithLabelValues(OutcomeIncomplete).Inc()
	default:
		c.Generations.WithLabelValues(OutcomeComplete).Inc()
	}
	c.MazeVertices.Observe(float64(m.VertexCount()))
	c.MazeEdges.Observe(float64(m.EdgeCount()))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *CarveCollector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (c *CarveCollector) WriteText(w io.Writer) error {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

// register adds col to reg. When an identical collector is already
// registered, the existing one is returned instead.
func register[T prometheus.Collector](reg prometheus.Registerer, col T, name string) (T, error) {
	if err := reg.Register(col); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}

	return col, nil
}
