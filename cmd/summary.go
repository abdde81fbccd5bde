package cmd

import (
	"fmt"
	"os"

	"github.com/kushgbisen/upeschedule/pkg/pipeline"
	"github.com/kushgbisen/upeschedule/pkg/timetable"
	"github.com/kushgbisen/upeschedule/pkg/tui"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show class type and batch counts of a normalized timetable",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")

		entries, source, err := pipeline.LoadNormalized(input)
		if err != nil {
			return err
		}

		fmt.Println(tui.AccentStyle().Render(fmt.Sprintf("Timetable summary (%s)", source)))
		tui.RenderSummary(os.Stdout, timetable.Summarize(entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringP("input", "i", "", "Normalized timetable JSON (defaults to the last normalize run)")
}
