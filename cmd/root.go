package cmd

import (
	"fmt"
	"os"

	"github.com/kushgbisen/upeschedule/pkg/logging"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.Default()

var rootCmd = &cobra.Command{
	Use:   "upeschedule",
	Short: "A CLI and TUI for cleaning UPES portal timetables",
	Long: `upeschedule takes the timetable JSON captured from the UPES portal's
scheduling page, normalizes module, cohort and venue fields, infers class
types and batches, and writes a clean JSON file you can export to a calendar.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return fmt.Errorf("failed to get log-level flag: %w", err)
		}
		asJSON, err := cmd.Flags().GetBool("log-json")
		if err != nil {
			return fmt.Errorf("failed to get log-json flag: %w", err)
		}
		logger = logging.Setup(level, asJSON)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
}
