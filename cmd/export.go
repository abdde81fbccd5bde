package cmd

import (
	"fmt"

	"github.com/kushgbisen/upeschedule/pkg/exporter"
	"github.com/kushgbisen/upeschedule/pkg/pipeline"
	"github.com/kushgbisen/upeschedule/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a normalized timetable to an ICS calendar or HTML report",
	Long: `Export normalized timetable entries without using the interactive TUI.
Reads --input when given, otherwise the cached result of the last 'normalize' run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		formatStr, _ := cmd.Flags().GetString("format")

		format, err := exporter.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		if output == "" {
			output = "timetable"
		}
		output = format.WithExtension(output)

		entries, source, err := pipeline.LoadNormalized(input)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("no timetable entries found in %s", source)
		}

		var n int
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting %s to %s...", source, output)).
			Action(func() {
				n, err = exporter.ExportFile(output, format, entries)
			}).
			Run()

		if err != nil {
			return err
		}

		logger.Debug("export finished", "format", format, "entries", len(entries), "exported", n)
		fmt.Println(tui.AccentStyle().Render(fmt.Sprintf("Successfully exported %d sessions to %s", n, output)))
		if skipped := len(entries) - n; format == exporter.FormatICS && skipped > 0 {
			fmt.Println(tui.WarnStyle().Render(fmt.Sprintf("%d entries had no usable date or time and were skipped", skipped)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("input", "i", "", "Normalized timetable JSON (defaults to the last normalize run)")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (extension added if missing)")
	exportCmd.Flags().StringP("format", "f", "ics", "Export format: ics or html")
}
