package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kushgbisen/upeschedule/pkg/config"
	"github.com/kushgbisen/upeschedule/pkg/timetable"
)

func TestValidateExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.json")
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if err := validateExistingFile(path); err != nil {
		t.Errorf("expected existing file to validate, got %v", err)
	}
	if err := validateExistingFile(""); err == nil {
		t.Errorf("expected empty path to be rejected")
	}
	if err := validateExistingFile(dir); err == nil {
		t.Errorf("expected directory to be rejected")
	}
	if err := validateExistingFile(filepath.Join(dir, "nope.json")); err == nil {
		t.Errorf("expected missing file to be rejected")
	}
}

func TestValidatePositiveInt(t *testing.T) {
	for _, ok := range []string{"55", " 90 ", "1"} {
		if err := validatePositiveInt(ok); err != nil {
			t.Errorf("expected %q to validate, got %v", ok, err)
		}
	}
	for _, bad := range []string{"0", "-5", "abc", ""} {
		if err := validatePositiveInt(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestValidateHex(t *testing.T) {
	if err := validateHex("#FF00ff"); err != nil {
		t.Errorf("expected valid hex, got %v", err)
	}
	for _, bad := range []string{"FF00FF", "#FF00F", "#GG0000"} {
		if err := validateHex(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestAccentColor(t *testing.T) {
	if accentColor(nil) != defaultAccent {
		t.Errorf("expected default accent for nil config")
	}
	if accentColor(&config.AppConfig{AccentColor: "42"}) != "42" {
		t.Errorf("expected configured accent to win")
	}
}

func TestThemeOptions(t *testing.T) {
	opts := themeOptions()
	if len(opts) != len(accentPresets)+1 {
		t.Fatalf("expected every preset plus custom, got %d options", len(opts))
	}
	if opts[0].Value != defaultAccent {
		t.Errorf("expected campus default first, got %q", opts[0].Value)
	}
	if !strings.Contains(opts[1].Key, "Lab Orange") {
		t.Errorf("expected preset name in option label, got %q", opts[1].Key)
	}
	if last := opts[len(opts)-1]; last.Value != customAccent {
		t.Errorf("expected custom entry last, got %q", last.Value)
	}
}

func TestRenderSummary(t *testing.T) {
	s := timetable.Summarize([]timetable.Entry{
		{"ClassType": "LAB", "Batch": []string{"B1"}},
		{"ClassType": "Theory", "Batch": []string{"B1", "B2"}},
		{},
	})

	var buf bytes.Buffer
	RenderSummary(&buf, s)
	out := buf.String()

	for _, want := range []string{"Lab", "Theory", "Unclassified", "B1", "B2"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected summary to mention %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "LAB") {
		t.Errorf("expected class types to be title-cased for display, got:\n%s", out)
	}
}

func TestRenderSummaryNoBatches(t *testing.T) {
	var buf bytes.Buffer
	RenderSummary(&buf, timetable.Summarize([]timetable.Entry{{"ClassType": "Lecture"}}))
	if strings.Contains(strings.ToUpper(buf.String()), "BATCH") {
		t.Errorf("expected batch table to be omitted when there are no batches, got:\n%s", buf.String())
	}
}

func TestDescribeConfig(t *testing.T) {
	out := describeConfig(&config.AppConfig{LectureModuleCode: "ECON101"})
	if !strings.Contains(out, "Lecture Module Code: ECON101") {
		t.Errorf("expected configured lecture code, got:\n%s", out)
	}
	if !strings.Contains(out, "Lab Threshold: > 55 minutes") {
		t.Errorf("expected default threshold, got:\n%s", out)
	}
	if !strings.Contains(out, "Timetable URL: Not set") {
		t.Errorf("expected unset URL note, got:\n%s", out)
	}
}
