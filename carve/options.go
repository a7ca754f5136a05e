package carve

import (
	"fmt"

	"github.com/katalvlaran/polymaze/internal/logging"
	"github.com/katalvlaran/polymaze/internal/rng"
)

// DefaultWorkers bounds the goroutines used for speculative verification.
const DefaultWorkers = 4

// speculationBatch is the number of one-way candidates sampled and verified
// together. It is fixed so the committed edges do not depend on Workers.
const speculationBatch = 8

// Option configures Carve.
type Option func(*config)

// Sampler is the randomness a carving pass draws from. *rand.Rand satisfies it.
type Sampler = rng.Source

type config struct {
	log      logging.Logger
	observer Observer
	workers  int
	sampler  Sampler
}

func newConfig(seed uint64, opts ...Option) config {
	cfg := config{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.sampler == nil {
		cfg.sampler = rng.New(seed)
	}

	return cfg
}

// WithLogger sets the structured logger. Without it (or with nil) Carve logs
// to the logger carried by ctx, see logging.ContextWithLogger.
func WithLogger(l logging.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithObserver registers a stage observer.
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}

// WithWorkers sets the verification worker count. Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("carve: WithWorkers(%d): workers must be > 0", n))
	}
	return func(c *config) { c.workers = n }
}

// WithSampler replaces the seeded generator. Tests use it to script exact
// sampling sequences; the seed is then ignored. Panics on nil.
func WithSampler(src Sampler) Option {
	if src == nil {
		panic("carve: WithSampler(nil)")
	}
	return func(c *config) { c.sampler = src }
}
