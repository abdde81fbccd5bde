package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/kushgbisen/upeschedule/pkg/config"
	"github.com/kushgbisen/upeschedule/pkg/exporter"
	"github.com/kushgbisen/upeschedule/pkg/pipeline"
	"github.com/kushgbisen/upeschedule/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

var stdout = os.Stdout

// validateExistingFile is the huh validator for the capture path input
func validateExistingFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot open %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// RunNormalizeTUI runs the interactive flow for cleaning a raw capture
func RunNormalizeTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the UPES timetable cleaner!"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var input string
	output := cfg.Output()
	var exportICS bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Raw timetable capture").
				Description("The JSON saved from the portal's scheduling page.").
				Placeholder("capture.json").
				Value(&input).
				Validate(validateExistingFile),

			huh.NewInput().
				Title("Output file name").
				Value(&output).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),

			huh.NewConfirm().
				Title("Also export an .ics calendar?").
				Value(&exportICS),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(output, ".json") {
		output += ".json"
	}

	var res *pipeline.Result
	var runErr error

	_ = spinner.New().
		Title("Normalizing timetable...").
		Action(func() {
			res, runErr = pipeline.Run(pipeline.Options{Input: input, Output: output, Config: cfg})
		}).
		Run()

	if runErr != nil {
		return fmt.Errorf("failed to normalize capture: %w", runErr)
	}

	if !res.Complete {
		fmt.Println(warnStyle.Render(fmt.Sprintf("⚠ Capture has only %d lines; the portal may not have finished loading.", res.Lines)))
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Wrote %d entries to %s", len(res.Entries), res.Output)))
	RenderSummary(stdout, res.Summary)

	if exportICS {
		return exportTo(res.Entries, exporter.FormatICS, strings.TrimSuffix(output, ".json")+".ics")
	}
	return nil
}

// RunExportTUI exports the cached timetable to a calendar or report file
func RunExportTUI() error {
	entries, source, err := pipeline.LoadNormalized("")
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	format := exporter.FormatICS
	var output string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[exporter.Format]().
				Title(fmt.Sprintf("Export %d sessions from %s as", len(entries), source)).
				Options(
					huh.NewOption("📅 Calendar (.ics)", exporter.FormatICS),
					huh.NewOption("🌐 HTML report (.html)", exporter.FormatHTML),
				).
				Value(&format),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Placeholder("timetable.ics").
				Value(&output).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	return exportTo(entries, format, format.WithExtension(output))
}

func exportTo(entries []timetable.Entry, format exporter.Format, output string) error {
	n, err := exporter.ExportFile(output, format, entries)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", format, err)
	}
	fmt.Println(accentStyle.Render(fmt.Sprintf("Exported %d sessions to %s", n, output)))
	return nil
}
