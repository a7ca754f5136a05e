package verify

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polymaze/core"
)

// Batch evaluates independent queries concurrently on at most workers
// goroutines and returns their results in query order.
//
// g must not be mutated while Batch runs. Each query compiles its own
// overrides, so no mutable state is shared between workers and the results do
// not depend on scheduling. The only error outcomes are ErrBadWorkers and ctx
// cancellation.
func Batch(ctx context.Context, g core.View, queries []Query, workers int) ([]Result, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadWorkers, workers)
	}
	out := make([]Result, len(queries))
	if len(queries) == 0 {
		return out, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range queries {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			q := queries[i]
			out[i] = Reachable(g, q.From, q.To, q.Overrides...)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
