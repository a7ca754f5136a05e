package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/polymaze/carve"
)

// newTable returns a light-style table writing to out. Headers keep their
// case. Columns listed in right are right-aligned (1-based).
func newTable(out io.Writer, header table.Row, right ...int) table.Writer {
	w := table.NewWriter()
	w.SetOutputMirror(out)
	w.SetStyle(table.StyleLight)
	w.Style().Format.Header = text.FormatDefault
	w.AppendHeader(header)

	cfgs := make([]table.ColumnConfig, 0, len(right))
	for _, n := range right {
		cfgs = append(cfgs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	w.SetColumnConfigs(cfgs)

	return w
}

// renderReports prints one row per carving stage.
func renderReports(out io.Writer, reports []carve.StageReport) {
	w := newTable(out, table.Row{"Stage", "Requested", "Applied", "Attempts", "Skipped"}, 2, 3, 4)
	for _, r := range reports {
		skipped := ""
		if r.Skipped {
			skipped = "yes"
		}
		w.AppendRow(table.Row{r.Stage.String(), r.Requested, r.Applied, r.Attempts, skipped})
	}
	w.Render()
}
