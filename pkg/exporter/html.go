package exporter

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/kushgbisen/upeschedule/pkg/timetable"
)

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
th { background: #f2f2f2; }
td.type-LAB { color: #a0338f; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="generated">{{len .Rows}} sessions</p>
<table id="timetable">
<thead>
<tr><th>Date</th><th>Start</th><th>End</th><th>Module</th><th>Code</th><th>Type</th><th>Venue</th><th>Teachers</th><th>Batch</th></tr>
</thead>
<tbody>
{{- range .Rows}}
<tr><td class="date">{{.Date}}</td><td class="start">{{.Start}}</td><td class="end">{{.End}}</td><td class="module">{{.Module}}</td><td class="code">{{.Code}}</td><td class="type type-{{.Type}}">{{.Type}}</td><td class="venue">{{.Venue}}</td><td class="teachers">{{.Teachers}}</td><td class="batch">{{.Batch}}</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

type reportRow struct {
	Date, Start, End, Module, Code, Type, Venue, Teachers, Batch string
}

type report struct {
	Title string
	Rows  []reportRow
}

// GenerateHTML renders normalized entries as a standalone HTML table, one row
// per entry in input order, and returns the number of rows written.
func GenerateHTML(entries []timetable.Entry, title string, w io.Writer) (int, error) {
	r := report{Title: title}
	if r.Title == "" {
		r.Title = "Timetable"
	}

	for _, e := range entries {
		if e == nil {
			continue
		}
		date, _ := e.Field(timetable.FieldDate)
		start, _ := e.Field(timetable.FieldSlotStartTime)
		end, _ := e.Field(timetable.FieldSlotEndTime)
		code, _ := e.FirstModuleCode()
		ct, _ := e.Field(timetable.FieldClassType)

		r.Rows = append(r.Rows, reportRow{
			Date:     date,
			Start:    start,
			End:      end,
			Module:   e.FirstModuleName(),
			Code:     code,
			Type:     ct,
			Venue:    e.Venue(),
			Teachers: strings.Join(e.Teachers(), ", "),
			Batch:    strings.Join(e.Batches(), ", "),
		})
	}

	if err := reportTemplate.Execute(w, r); err != nil {
		return 0, fmt.Errorf("failed to render report: %w", err)
	}
	return len(r.Rows), nil
}
