package capture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kushgbisen/upeschedule/pkg/timetable"
)

// DefaultMinLines is the completeness heuristic for a timetable capture:
// a full semester response pretty-prints to more than this many lines.
const DefaultMinLines = 10000

var (
	// ErrNotArray is returned when a capture is not a JSON array of objects
	ErrNotArray = errors.New("capture is not a JSON array of timetable entries")
	// ErrIncompleteCapture is returned by Validate for suspiciously short captures
	ErrIncompleteCapture = errors.New("capture looks incomplete")
)

// Decode reads a raw timetable capture. Numbers are kept as json.Number so
// identifiers survive a round trip unchanged.
func Decode(r io.Reader) ([]timetable.Entry, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode capture JSON: %w", err)
	}

	list, ok := doc.([]any)
	if !ok {
		return nil, ErrNotArray
	}

	entries := make([]timetable.Entry, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d: %w", i, ErrNotArray)
		}
		entries = append(entries, timetable.Entry(m))
	}

	return entries, nil
}

// LoadFile reads and decodes a capture from disk.
func LoadFile(path string) ([]timetable.Entry, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read capture file: %w", err)
	}

	entries, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, data, nil
}

// CountLines returns the number of lines raw spans once pretty-printed with
// a 2-space indent, which is how the portal capture is written to disk.
func CountLines(raw []byte) (int, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return 0, fmt.Errorf("failed to indent capture: %w", err)
	}
	return bytes.Count(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n")) + 1, nil
}

// Validate checks the completeness heuristic: a capture must pretty-print to
// more than minLines lines. The returned error wraps ErrIncompleteCapture.
func Validate(raw []byte, minLines int) error {
	lines, err := CountLines(raw)
	if err != nil {
		return err
	}
	if lines <= minLines {
		return fmt.Errorf("%w: %d lines, expected more than %d", ErrIncompleteCapture, lines, minLines)
	}
	return nil
}
