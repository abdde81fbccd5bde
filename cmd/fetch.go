package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/kushgbisen/upeschedule/pkg/capture"
	"github.com/kushgbisen/upeschedule/pkg/config"
	"github.com/kushgbisen/upeschedule/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a raw timetable capture using an existing portal session",
	Long: `Fetch the timetable JSON from the portal endpoint with a session cookie
or bearer token copied from a logged-in browser. Transient gateway errors are
retried. The raw response is saved unchanged; run 'normalize' on it next.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		cookie, _ := cmd.Flags().GetString("cookie")
		token, _ := cmd.Flags().GetString("token")
		retries, _ := cmd.Flags().GetInt("retries")
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if url == "" {
			url = cfg.TimetableURL
		}
		if url == "" {
			return fmt.Errorf("no timetable URL given; pass --url or set one with 'upeschedule config --set-url'")
		}

		client := capture.NewClient(capture.Options{
			Cookie:     cookie,
			Token:      token,
			RetryCount: retries,
			Logger:     logger,
		})

		var body []byte
		_ = spinner.New().
			Title("Fetching timetable from the portal...").
			Action(func() {
				body, err = client.Fetch(cmd.Context(), url)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch timetable: %w", err)
		}

		if _, err := capture.Decode(bytes.NewReader(body)); err != nil {
			return fmt.Errorf("portal did not return timetable entries (is the session still valid?): %w", err)
		}

		if err := capture.Validate(body, cfg.MinLines()); err != nil {
			if !errors.Is(err, capture.ErrIncompleteCapture) {
				return err
			}
			fmt.Println(tui.WarnStyle().Render(fmt.Sprintf("⚠ %v", err)))
		}

		if err := os.WriteFile(output, body, 0644); err != nil {
			return fmt.Errorf("failed to write capture: %w", err)
		}

		fmt.Println(tui.AccentStyle().Render(fmt.Sprintf("Saved raw capture (%d bytes) to %s", len(body), output)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("url", "", "Timetable endpoint URL (defaults to the configured URL)")
	fetchCmd.Flags().String("cookie", "", "Cookie header of a logged-in portal session")
	fetchCmd.Flags().String("token", "", "Bearer token of a logged-in portal session")
	fetchCmd.Flags().Int("retries", capture.DefaultRetryCount, "Retries for transient errors (0 disables retrying)")
	fetchCmd.Flags().StringP("output", "o", "capture.json", "Where to save the raw capture")
}
