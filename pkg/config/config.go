package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kushgbisen/upeschedule/pkg/capture"
	"github.com/kushgbisen/upeschedule/pkg/timetable"
)

// DefaultOutputPath is where normalized timetables are written when nothing else is configured
const DefaultOutputPath = "timetable.json"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	OutputPath   string `json:"output_path,omitempty"`
	AccentColor  string `json:"accent_color,omitempty"`
	TimetableURL string `json:"timetable_url,omitempty"`

	// Capture completeness heuristic, see capture.Validate
	MinCaptureLines int `json:"min_capture_lines,omitempty"`

	// Class type inference constants, see timetable.Rules
	LongSlotMinutes      int    `json:"long_slot_minutes,omitempty"`
	TutorialModulePrefix string `json:"tutorial_module_prefix,omitempty"`
	LectureModuleCode    string `json:"lecture_module_code,omitempty"`
}

// PathEnv overrides the config file location
const PathEnv = "UPESCHEDULE_CONFIG"

// Path returns $UPESCHEDULE_CONFIG or ~/.upeschedule.json.
func Path() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".upeschedule.json"), nil
}

// Load reads the settings file. A missing file yields an empty config,
// which resolves every setting to its default.
func Load() (*AppConfig, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &AppConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &AppConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects negative thresholds.
func (c *AppConfig) Validate() error {
	if c.LongSlotMinutes < 0 {
		return fmt.Errorf("long_slot_minutes must not be negative, got %d", c.LongSlotMinutes)
	}
	if c.MinCaptureLines < 0 {
		return fmt.Errorf("min_capture_lines must not be negative, got %d", c.MinCaptureLines)
	}
	return nil
}

// Save validates cfg and replaces the settings file with it. The file is
// written next to its final location and renamed into place.
func Save(cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	path, err := Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// Rules returns the classification rules, filling unset values with defaults.
func (c *AppConfig) Rules() timetable.Rules {
	rules := timetable.DefaultRules()
	if c == nil {
		return rules
	}
	if c.LongSlotMinutes > 0 {
		rules.LongSlotMinutes = c.LongSlotMinutes
	}
	if c.TutorialModulePrefix != "" {
		rules.TutorialModulePrefix = c.TutorialModulePrefix
	}
	if c.LectureModuleCode != "" {
		rules.LectureModuleCode = c.LectureModuleCode
	}
	return rules
}

// MinLines returns the configured capture heuristic or its default.
func (c *AppConfig) MinLines() int {
	if c == nil || c.MinCaptureLines <= 0 {
		return capture.DefaultMinLines
	}
	return c.MinCaptureLines
}

// Output returns the configured output path or its default.
func (c *AppConfig) Output() string {
	if c == nil || c.OutputPath == "" {
		return DefaultOutputPath
	}
	return c.OutputPath
}
