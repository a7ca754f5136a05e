package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polymaze/internal/logging"
	"github.com/katalvlaran/polymaze/level"
	"github.com/katalvlaran/polymaze/maze"
)

func newLevelsCmd(a *app) *cobra.Command {
	var (
		file     string
		generate bool
		parallel int
		workers  int
	)
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the level catalogue, or generate every level",
		Example: "  polymaze levels\n" +
			"  polymaze levels --generate --parallel 8\n" +
			"  polymaze levels --file my-levels.yaml --generate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			levels, err := loadLevels(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !generate {
				w := newTable(out, table.Row{"Name", "Shape", "N", "Seed", "One-way", "Loops", "Collectibles"}, 3, 4, 5, 6, 7)
				for _, d := range levels {
					w.AppendRow(table.Row{d.Name, d.Spec.Shape, d.Spec.N, d.Seed,
						fmt.Sprintf("%.2f", d.Params.OneWayRatio), d.Params.LoopEdgeCount, d.Params.CollectibleCount})
				}
				w.Render()
				return nil
			}

			if parallel <= 0 {
				parallel = 1
			}
			models, elapsed, err := generateAll(cmd, a, levels, parallel, workers)
			if err != nil {
				return err
			}
			w := newTable(out, table.Row{"Name", "Spec", "Rooms", "Corridors", "One-way", "Moves", "Time", "Note"}, 3, 4, 5, 6, 7)
			for i, d := range levels {
				m := models[i]
				note := ""
				if m.Incomplete() != nil {
					note = "incomplete"
				}
				w.AppendRow(table.Row{d.Name, d.Spec, m.VertexCount(), m.EdgeCount(), m.OneWayCount(),
					m.SolutionLength(), elapsed[i].Round(time.Millisecond), note})
			}
			w.Render()
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&file, "file", "", "level file (yaml/json/toml) instead of the built-in catalogue")
	f.BoolVar(&generate, "generate", false, "generate every level and report its statistics")
	f.IntVar(&parallel, "parallel", 4, "levels generated concurrently")
	f.IntVar(&workers, "workers", 1, "verification workers per level")

	return cmd
}

func loadLevels(file string) ([]level.Descriptor, error) {
	if file == "" {
		return level.Catalogue(), nil
	}
	return level.Load(file)
}

// generateAll builds every level with at most parallel generations in
// flight. The first failure cancels the rest.
func generateAll(cmd *cobra.Command, a *app, levels []level.Descriptor, parallel, workers int, extra ...maze.Option) ([]*maze.Model, []time.Duration, error) {
	if workers <= 0 {
		workers = 1
	}
	models := make([]*maze.Model, len(levels))
	elapsed := make([]time.Duration, len(levels))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(parallel)
	for i, d := range levels {
		g.Go(func() error {
			began := time.Now()
			log := a.log.With(logging.String("level", d.Name))
			opts := append([]maze.Option{maze.WithLogger(log), maze.WithWorkers(workers)}, extra...)
			m, err := maze.Regenerate(ctx, d.Maze(), opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", d.Name, err)
			}
			models[i], elapsed[i] = m, time.Since(began)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return models, elapsed, nil
}
