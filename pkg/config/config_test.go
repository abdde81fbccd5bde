package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kushgbisen/upeschedule/pkg/capture"
	"github.com/kushgbisen/upeschedule/pkg/timetable"
)

func TestConfigLoadSave(t *testing.T) {
	tempDir := t.TempDir()

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests
	t.Setenv(PathEnv, "")

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.OutputPath = "out/timetable.json"
	cfg.AccentColor = "42"
	cfg.MinCaptureLines = 500
	cfg.LongSlotMinutes = 60
	cfg.TutorialModulePrefix = "STAT"
	cfg.LectureModuleCode = "CSEG1001"

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify the file was actually created
	configPath := filepath.Join(tempDir, ".upeschedule.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if diff := cmp.Diff(cfg, loadedCfg); diff != "" {
		t.Errorf("loaded config does not match saved config (-saved +loaded):\n%s", diff)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)
	t.Setenv(PathEnv, "")

	// Write invalid JSON to the config file
	configPath := filepath.Join(tempDir, ".upeschedule.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestConfigDefaults(t *testing.T) {
	var empty AppConfig

	if diff := cmp.Diff(timetable.DefaultRules(), empty.Rules()); diff != "" {
		t.Errorf("expected default rules (-want +got):\n%s", diff)
	}
	if empty.MinLines() != capture.DefaultMinLines {
		t.Errorf("expected default min lines %d, got %d", capture.DefaultMinLines, empty.MinLines())
	}
	if empty.Output() != DefaultOutputPath {
		t.Errorf("expected default output path, got %s", empty.Output())
	}

	var nilCfg *AppConfig
	if nilCfg.Rules().LongSlotMinutes != timetable.DefaultLongSlotMinutes {
		t.Errorf("expected nil config to yield defaults")
	}
}

func TestConfigRulesOverride(t *testing.T) {
	cfg := &AppConfig{LongSlotMinutes: 90, LectureModuleCode: "ECON101"}
	rules := cfg.Rules()

	want := timetable.Rules{
		LongSlotMinutes:      90,
		TutorialModulePrefix: timetable.DefaultTutorialModulePrefix,
		LectureModuleCode:    "ECON101",
	}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigPathOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	t.Setenv(PathEnv, path)

	if err := Save(&AppConfig{LectureModuleCode: "CSEG1001"}); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("expected temporary file to be renamed away")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.LectureModuleCode != "CSEG1001" {
		t.Errorf("expected lecture code from overridden path, got %q", cfg.LectureModuleCode)
	}
}

func TestConfigRejectsNegativeThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	t.Setenv(PathEnv, path)

	if err := Save(&AppConfig{LongSlotMinutes: -5}); err == nil {
		t.Errorf("expected negative lab threshold to be rejected")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected nothing written for an invalid config")
	}

	if err := os.WriteFile(path, []byte(`{"min_capture_lines": -1}`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Errorf("expected negative min_capture_lines to be rejected on load")
	}
}
