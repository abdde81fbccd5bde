package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kushgbisen/upeschedule/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Class Type Rules", "rules"),
						huh.NewOption("Set Output & Capture Settings", "output"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "rules":
			err = runSetRulesTUI(cfg)
		case "output":
			err = runSetOutputTUI(cfg)
		case "view":
			fmt.Println(describeConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

func describeConfig(cfg *config.AppConfig) string {
	rules := cfg.Rules()
	var b strings.Builder
	path, err := config.Path()
	if err != nil {
		path = "~/.upeschedule.json"
	}
	b.WriteString(accentStyle.Render(fmt.Sprintf("\n--- Current Configuration (%s) ---", path)) + "\n")
	fmt.Fprintf(&b, "Output File: %s\n", cfg.Output())
	if cfg.TimetableURL == "" {
		b.WriteString("Timetable URL: Not set\n")
	} else {
		fmt.Fprintf(&b, "Timetable URL: %s\n", cfg.TimetableURL)
	}
	fmt.Fprintf(&b, "Min Capture Lines: %d\n", cfg.MinLines())
	fmt.Fprintf(&b, "Lab Threshold: > %d minutes\n", rules.LongSlotMinutes)
	fmt.Fprintf(&b, "Tutorial Module Prefix: %s\n", rules.TutorialModulePrefix)
	fmt.Fprintf(&b, "Lecture Module Code: %s\n", rules.LectureModuleCode)
	fmt.Fprintf(&b, "Accent Color: %s\n", accentColor(cfg))
	return b.String()
}

// validatePositiveInt is the huh validator for minute and line thresholds
func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive whole number")
	}
	return nil
}

// validateHex accepts "#RRGGBB" color codes
func validateHex(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	if _, err := strconv.ParseUint(str[1:], 16, 32); err != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}

func runSetRulesTUI(cfg *config.AppConfig) error {
	rules := cfg.Rules()
	threshold := strconv.Itoa(rules.LongSlotMinutes)
	prefix := rules.TutorialModulePrefix
	lecture := rules.LectureModuleCode

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Lab threshold (minutes)").
				Description("Sessions longer than this are classified as LAB.").
				Value(&threshold).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Tutorial module prefix").
				Description("Single-cohort sessions of modules starting with this are Tutorials.").
				Value(&prefix),
			huh.NewInput().
				Title("Lecture module code").
				Description("Sessions of exactly this module are Lectures.").
				Value(&lecture),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.LongSlotMinutes, _ = strconv.Atoi(strings.TrimSpace(threshold))
	cfg.TutorialModulePrefix = strings.TrimSpace(prefix)
	cfg.LectureModuleCode = strings.TrimSpace(lecture)

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Class type rules saved.\n"))
	return nil
}

func runSetOutputTUI(cfg *config.AppConfig) error {
	output := cfg.Output()
	url := cfg.TimetableURL
	minLines := strconv.Itoa(cfg.MinLines())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default output file").
				Value(&output),
			huh.NewInput().
				Title("Timetable endpoint URL").
				Description("Used by 'upeschedule fetch' when --url is not given.").
				Placeholder("https://...").
				Value(&url),
			huh.NewInput().
				Title("Minimum capture lines").
				Description("Captures with fewer pretty-printed lines are reported as incomplete.").
				Value(&minLines).
				Validate(validatePositiveInt),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.OutputPath = strings.TrimSpace(output)
	cfg.TimetableURL = strings.TrimSpace(url)
	cfg.MinCaptureLines, _ = strconv.Atoi(strings.TrimSpace(minLines))

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Output settings saved.\n"))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// accentPreset is a named accent offered by the theme picker
type accentPreset struct {
	Name  string
	Color string
}

// accentPresets has the campus default plus one accent per class type
var accentPresets = []accentPreset{
	{"Campus Red", defaultAccent},
	{"Lab Orange", "208"},
	{"Tutorial Teal", "37"},
	{"Lecture Blue", "33"},
	{"Theory Violet", "99"},
}

const customAccent = "custom"

func themeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(accentPresets)+1)
	for _, p := range accentPresets {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s", colorBlock(p.Color), p.Name), p.Color))
	}
	return append(opts, huh.NewOption("✨ Custom Hex Code", customAccent))
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	input := accentColor(cfg)

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Accent color").
				Description("Used for menus, summaries and command output.").
				Options(themeOptions()...).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == customAccent {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Hex accent").
					Description("Six hex digits after #, e.g. #C8102E.").
					Placeholder("#").
					Value(&hexInput).
					Validate(validateHex),
			),
		).WithTheme(GetCustomTheme(accentColor(cfg)))

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.AccentColor))
	fmt.Println(accentStyle.Render("\n✅ Accent saved.\n"))
	return nil
}
