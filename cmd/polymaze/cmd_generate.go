package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polymaze/maze"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		mf     mazeFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one maze and print it",
		Example: "  polymaze generate --shape icosahedron -n 3 --seed 7 --preset hard\n" +
			"  polymaze generate --level level-12 --output json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !validOutput(output) {
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", output)
			}
			d, err := mf.descriptor()
			if err != nil {
				return err
			}
			m, err := maze.Regenerate(cmd.Context(), d.Maze(), mf.options()...)
			if err != nil {
				return err
			}
			return writeModel(cmd.OutOrStdout(), d.Name, m, output)
		},
	}
	mf.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")

	return cmd
}

func writeModel(out io.Writer, name string, m *maze.Model, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(m.Snapshot())
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(m.Snapshot()); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		fmt.Fprintf(out, "Maze:        %s (%s, seed %d)\n", name, m.Spec(), m.Seed())
		fmt.Fprintf(out, "Rooms:       %d\n", m.VertexCount())
		fmt.Fprintf(out, "Corridors:   %d (%d one-way, %.1f%%)\n", m.EdgeCount(), m.OneWayCount(), 100*m.OneWayFraction())
		fmt.Fprintf(out, "Start/End:   %d → %d\n", m.Start(), m.End())
		fmt.Fprintf(out, "Solution:    %d moves, cost %.3f\n", m.SolutionLength(), m.SolutionCost())
		fmt.Fprintf(out, "Backbone:    %d moves\n", m.BackboneLength())
		if c := m.Collectibles(); len(c) > 0 {
			fmt.Fprintf(out, "Collectibles: %v\n", c)
		}
		if err := m.Incomplete(); err != nil {
			fmt.Fprintf(out, "Note:        %v\n", err)
		}
		renderReports(out, m.Reports())
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func validOutput(format string) bool {
	return format == "text" || format == "json" || format == "yaml"
}
