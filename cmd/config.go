package cmd

import (
	"fmt"

	"github.com/kushgbisen/upeschedule/pkg/config"
	"github.com/kushgbisen/upeschedule/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage upeschedule configuration",
	Long:  "View or edit your local configuration settings (class type rules, output path, capture heuristic).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		flags := cmd.Flags()

		if flags.Changed("set-threshold") {
			minutes, _ := flags.GetInt("set-threshold")
			if minutes <= 0 {
				return fmt.Errorf("lab threshold must be a positive number of minutes")
			}
			cfg.LongSlotMinutes = minutes
			changed = true
		}
		if flags.Changed("set-prefix") {
			cfg.TutorialModulePrefix, _ = flags.GetString("set-prefix")
			changed = true
		}
		if flags.Changed("set-lecture") {
			cfg.LectureModuleCode, _ = flags.GetString("set-lecture")
			changed = true
		}
		if flags.Changed("set-output") {
			cfg.OutputPath, _ = flags.GetString("set-output")
			changed = true
		}
		if flags.Changed("set-url") {
			cfg.TimetableURL, _ = flags.GetString("set-url")
			changed = true
		}
		if flags.Changed("set-min-lines") {
			lines, _ := flags.GetInt("set-min-lines")
			if lines <= 0 {
				return fmt.Errorf("minimum capture lines must be positive")
			}
			cfg.MinCaptureLines = lines
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			rules := cfg.Rules()
			logger.Debug("config saved", "threshold", rules.LongSlotMinutes, "prefix", rules.TutorialModulePrefix, "lecture", rules.LectureModuleCode)
			fmt.Println(tui.AccentStyle().Render("✅ Configuration saved."))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Int("set-threshold", 0, "Sessions longer than this many minutes are labs")
	configCmd.Flags().String("set-prefix", "", "Module code prefix for single-cohort tutorials")
	configCmd.Flags().String("set-lecture", "", "Module code classified as a lecture")
	configCmd.Flags().String("set-output", "", "Default output file for normalize")
	configCmd.Flags().String("set-url", "", "Timetable endpoint used by fetch")
	configCmd.Flags().Int("set-min-lines", 0, "Capture completeness threshold in pretty-printed lines")
}
