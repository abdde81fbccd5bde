package cmd

import (
	"fmt"
	"os"

	"github.com/kushgbisen/upeschedule/pkg/config"
	"github.com/kushgbisen/upeschedule/pkg/pipeline"
	"github.com/kushgbisen/upeschedule/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Clean a raw timetable capture and write it as JSON",
	Long: `Normalize a timetable capture: collapse whitespace in names, strip
portal suffixes from module and cohort codes, infer the class type and batch
of every session, and write the result as indented JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		noCache, _ := cmd.Flags().GetBool("no-cache")
		quiet, _ := cmd.Flags().GetBool("quiet")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		opts := pipeline.Options{
			Input:        input,
			Output:       output,
			Config:       cfg,
			Logger:       logger,
			Stdin:        os.Stdin,
			SkipSnapshot: noCache,
		}

		var res *pipeline.Result
		run := func() { res, err = pipeline.Run(opts) }

		if quiet || input == pipeline.StdinPath {
			run()
		} else {
			_ = spinner.New().
				Title(fmt.Sprintf("Normalizing %s...", input)).
				Action(run).
				Run()
		}

		if err != nil {
			return fmt.Errorf("failed to normalize capture: %w", err)
		}

		if !res.Complete {
			fmt.Println(tui.WarnStyle().Render(fmt.Sprintf("⚠ Capture has only %d lines (expected more than %d); the portal may not have finished loading.", res.Lines, cfg.MinLines())))
		}

		fmt.Println(tui.AccentStyle().Render(fmt.Sprintf("Successfully normalized %d entries to %s", len(res.Entries), res.Output)))
		if !quiet {
			tui.RenderSummary(os.Stdout, res.Summary)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringP("input", "i", "", "Raw capture file (use - for stdin)")
	normalizeCmd.Flags().StringP("output", "o", "", "Output file path (defaults to the configured output, timetable.json)")
	normalizeCmd.Flags().Bool("no-cache", false, "Do not cache this run for export/summary")
	normalizeCmd.Flags().BoolP("quiet", "q", false, "Only print the result line")
	normalizeCmd.MarkFlagRequired("input")
}
