package writers

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"ggscaf-core/breakpoint"
	"ggscaf-core/stats"
)

// RenderStats prints an assembly summary as an aligned table.
func RenderStats(w io.Writer, name string, s stats.Summary) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Assembly", "Sequences", "Total", "Min", "Max", "Mean", "N50"})
	t.SetBorder(false)
	t.SetAutoFormatHeaders(false)
	t.Append([]string{
		name,
		fmt.Sprintf("%d", s.Count),
		fmt.Sprintf("%d", s.TotalLen),
		fmt.Sprintf("%d", s.Min),
		fmt.Sprintf("%d", s.Max),
		fmt.Sprintf("%.1f", s.Mean),
		fmt.Sprintf("%d", s.N50),
	})
	t.Render()
}

// RenderBreakpoints prints the per-scaffold breakpoint table followed by
// the aggregate row.
func RenderBreakpoints(w io.Writer, rep *breakpoint.Report) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Scaffold", "Contigs", "Pairs", "Chrom", "Orient", "Order", "Breakpoints"})
	t.SetBorder(false)
	t.SetAutoFormatHeaders(false)
	for _, sc := range rep.Scaffolds {
		t.Append(countsRow(sc.Name, sc.Counts))
	}
	t.SetFooter(countsRow("TOTAL", rep.Total))
	t.Render()
}

func countsRow(name string, c breakpoint.Counts) []string {
	return []string{
		name,
		fmt.Sprintf("%d", c.Contigs),
		fmt.Sprintf("%d", c.Pairs),
		fmt.Sprintf("%d", c.DiffChromosome),
		fmt.Sprintf("%d", c.DiffOrientation),
		fmt.Sprintf("%d", c.DiffOrder),
		fmt.Sprintf("%d", c.Breakpoints()),
	}
}
