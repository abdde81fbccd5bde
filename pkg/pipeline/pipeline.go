package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/kushgbisen/upeschedule/pkg/capture"
	"github.com/kushgbisen/upeschedule/pkg/config"
	"github.com/kushgbisen/upeschedule/pkg/store"
	"github.com/kushgbisen/upeschedule/pkg/timetable"
)

// StdinPath selects standard input as the capture source
const StdinPath = "-"

// Options describes one normalization run
type Options struct {
	Input  string
	Output string
	Config *config.AppConfig
	Logger *log.Logger
	Stdin  io.Reader

	// SkipSnapshot leaves the cached snapshot untouched
	SkipSnapshot bool
}

// Result reports what a run produced
type Result struct {
	Entries  []timetable.Entry
	Output   string
	Lines    int
	Complete bool
	Summary  timetable.Summary
}

// Run loads a raw capture, normalizes it, writes the cleaned JSON and caches a snapshot.
// An incomplete capture is logged but still processed.
func Run(opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	raw, err := readInput(opts)
	if err != nil {
		return nil, err
	}

	entries, err := capture.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	res := &Result{Output: opts.Output, Complete: true}
	if res.Output == "" {
		res.Output = opts.Config.Output()
	}

	res.Lines, _ = capture.CountLines(raw)
	if err := capture.Validate(raw, opts.Config.MinLines()); err != nil {
		if !errors.Is(err, capture.ErrIncompleteCapture) {
			return nil, err
		}
		res.Complete = false
		logger.Warn("capture may be incomplete", "lines", res.Lines, "min_lines", opts.Config.MinLines())
	}

	normalizer := timetable.NewNormalizer(opts.Config.Rules(), logger)
	res.Entries = normalizer.Normalize(entries)
	res.Summary = timetable.Summarize(res.Entries)

	if err := store.WriteJSON(res.Output, res.Entries); err != nil {
		return nil, err
	}
	logger.Info("wrote normalized timetable", "path", res.Output, "entries", len(res.Entries))

	if !opts.SkipSnapshot {
		if err := store.SaveSnapshot(opts.Input, res.Entries); err != nil {
			logger.Warn("could not cache snapshot", "err", err)
		}
	}

	return res, nil
}

func readInput(opts Options) ([]byte, error) {
	if opts.Input == "" {
		return nil, fmt.Errorf("no capture file given")
	}

	if opts.Input == StdinPath {
		if opts.Stdin == nil {
			return nil, fmt.Errorf("no standard input available")
		}
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read capture from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read capture file: %w", err)
	}
	return data, nil
}

// LoadNormalized reads entries for the export and summary commands: from path
// when given, otherwise from the cached snapshot of the last run.
func LoadNormalized(path string) ([]timetable.Entry, string, error) {
	if path != "" {
		entries, _, err := capture.LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		return entries, path, nil
	}

	snap, ok := store.LoadSnapshot()
	if !ok {
		return nil, "", fmt.Errorf("no recent timetable cached; run 'upeschedule normalize' first or pass --input")
	}
	return snap.Entries, "cached snapshot", nil
}
