package tui

import (
	"github.com/kushgbisen/upeschedule/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// defaultAccent is the UPES-ish red used until the user picks a color
const defaultAccent = "161"

var (
	// These act as fallbacks initially, but are replaced by GetTheme()
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// AccentStyle returns the current accent style for command output.
func AccentStyle() lipgloss.Style { return accentStyle }

// ErrorStyle returns the style for failures.
func ErrorStyle() lipgloss.Style { return errorStyle }

// WarnStyle returns the style for non-fatal warnings.
func WarnStyle() lipgloss.Style { return warnStyle }

// accentColor resolves the configured accent or the default.
func accentColor(cfg *config.AppConfig) string {
	if cfg != nil && cfg.AccentColor != "" {
		return cfg.AccentColor
	}
	return defaultAccent
}

// GetTheme loads the user's saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	if err != nil {
		cfg = nil
	}
	baseColor := accentColor(cfg)

	// Update the global lipgloss accent so manual CLI print statements also receive the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme builds the form theme around one accent color. Validation
// errors share the red used for failed commands.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Inherit(errorStyle)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Inherit(errorStyle)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "235"})
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu interactive form experience
func RunTUI() error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("🧹 Normalize a timetable capture", "normalize"),
					huh.NewOption("📅 Export the last timetable", "export"),
					huh.NewOption("📊 Show timetable summary", "summary"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	switch action {
	case "export":
		return RunExportTUI()
	case "summary":
		return RunSummaryTUI()
	case "config":
		return RunConfigTUI()
	}

	return RunNormalizeTUI()
}
