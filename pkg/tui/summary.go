package tui

import (
	"fmt"
	"io"

	"github.com/kushgbisen/upeschedule/pkg/pipeline"
	"github.com/kushgbisen/upeschedule/pkg/timetable"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// classLabel formats a class type for display ("LAB" -> "Lab").
func classLabel(ct string) string {
	return cases.Title(language.English).String(ct)
}

// RenderSummary writes class type and batch counts as rounded tables.
func RenderSummary(w io.Writer, s timetable.Summary) {
	types := table.NewWriter()
	types.SetOutputMirror(w)
	types.AppendHeader(table.Row{"Class type", "Sessions"})
	for _, ct := range s.ClassTypes() {
		types.AppendRow(table.Row{classLabel(ct), s.ByClassType[ct]})
	}
	types.AppendFooter(table.Row{"Total", s.Total})
	types.SetStyle(table.StyleRounded)
	types.Render()

	if len(s.ByBatch) == 0 {
		return
	}

	batches := table.NewWriter()
	batches.SetOutputMirror(w)
	batches.AppendHeader(table.Row{"Batch", "Sessions"})
	for _, b := range s.BatchNames() {
		batches.AppendRow(table.Row{b, s.ByBatch[b]})
	}
	batches.SetStyle(table.StyleRounded)
	batches.Render()
}

// RunSummaryTUI prints the summary of the cached timetable
func RunSummaryTUI() error {
	entries, source, err := pipeline.LoadNormalized("")
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("Timetable summary (%s)", source)))
	RenderSummary(stdout, timetable.Summarize(entries))
	return nil
}
