package main

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/polymaze/internal/logging"
	"github.com/katalvlaran/polymaze/level"
	"github.com/katalvlaran/polymaze/maze"
	"github.com/katalvlaran/polymaze/verify"
)

// errVerify is returned when at least one maze fails a check.
var errVerify = errors.New("verification failed")

func newVerifyCmd(a *app) *cobra.Command {
	var (
		mf  mazeFlags
		all bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Regenerate mazes twice and check determinism and solvability",
		Example: "  polymaze verify --shape octahedron -n 5 --seed 3\n" +
			"  polymaze verify --all",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var levels []level.Descriptor
			if all {
				levels = level.Catalogue()
			} else {
				d, err := mf.descriptor()
				if err != nil {
					return err
				}
				levels = []level.Descriptor{d}
			}

			w := newTable(cmd.OutOrStdout(), table.Row{"Name", "Deterministic", "Solvable", "One-way ≤ ratio", "Result"})
			failed := 0
			for _, d := range levels {
				c, err := check(cmd, d, mf.options())
				if err != nil {
					return err
				}
				result := "ok"
				if !c.ok() {
					result = "FAIL"
					failed++
					a.log.Error(cmd.Context(), "maze failed verification", logging.String("level", d.Name))
					if c.diff != "" {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: regenerated maze differs:\n%s\n", d.Name, c.diff)
					}
				}
				w.AppendRow(table.Row{d.Name, c.deterministic, c.solvable, c.ratio, result})
			}
			w.Render()

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d mazes", errVerify, failed, len(levels))
			}
			return nil
		},
	}
	mf.register(cmd.Flags())
	cmd.Flags().BoolVar(&all, "all", false, "verify every catalogue level")

	return cmd
}

type checkResult struct {
	deterministic bool
	solvable      bool
	ratio         bool
	diff          string
}

func (c checkResult) ok() bool { return c.deterministic && c.solvable && c.ratio }

// check generates d twice, then re-runs the solvability oracle on the result.
func check(cmd *cobra.Command, d level.Descriptor, opts []maze.Option) (checkResult, error) {
	first, err := maze.Regenerate(cmd.Context(), d.Maze(), opts...)
	if err != nil {
		return checkResult{}, fmt.Errorf("%s: %w", d.Name, err)
	}
	second, err := maze.Regenerate(cmd.Context(), d.Maze(), opts...)
	if err != nil {
		return checkResult{}, fmt.Errorf("%s: %w", d.Name, err)
	}

	var c checkResult
	c.diff = cmp.Diff(first.Snapshot(), second.Snapshot())
	c.deterministic = c.diff == ""
	c.solvable = verify.Reachable(first, first.Start(), first.End()).Reachable
	c.ratio = first.OneWayFraction() <= d.Params.OneWayRatio+1e-12

	return c, nil
}
