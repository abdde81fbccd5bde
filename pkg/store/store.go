package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kushgbisen/upeschedule/pkg/timetable"
)

// Encode writes entries as 2-space indented JSON followed by a newline.
func Encode(w io.Writer, entries []timetable.Entry) error {
	if entries == nil {
		entries = []timetable.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to serialize timetable: %w", err)
	}
	return nil
}

// WriteJSON replaces the file at path with the pretty-printed entries.
// A stale file from a previous run is removed first so a failed write
// never leaves old data looking current.
func WriteJSON(path string, entries []timetable.Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create output directory: %w", err)
		}
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove previous output: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, entries); err != nil {
		return err
	}
	return file.Close()
}
