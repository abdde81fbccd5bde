package exporter

import (
	"fmt"
	"os"
	"strings"

	"github.com/kushgbisen/upeschedule/pkg/timetable"
)

// Format is an export file format
type Format string

const (
	FormatICS  Format = "ics"
	FormatHTML Format = "html"
)

// ParseFormat accepts "ics" or "html", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatICS, FormatHTML:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (expected ics or html)", s)
}

// WithExtension appends the format's extension to path if it is missing.
func (f Format) WithExtension(path string) string {
	if strings.HasSuffix(strings.ToLower(path), "."+string(f)) {
		return path
	}
	return path + "." + string(f)
}

// ExportFile writes entries to path in the given format and returns how many
// sessions were exported.
func ExportFile(path string, format Format, entries []timetable.Entry) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	var n int
	switch format {
	case FormatHTML:
		n, err = GenerateHTML(entries, "UPES Timetable", file)
	default:
		n, err = GenerateICS(entries, file)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to generate %s: %w", format, err)
	}

	return n, file.Close()
}
