package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"DEBUG":   log.DebugLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"info":    log.InfoLevel,
		"bogus":   log.InfoLevel,
		"":        log.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", false)

	logger.Info("hidden message")
	logger.Warn("shown message", "entries", 3)

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("expected info line to be filtered at warn level, got: %s", out)
	}
	if !strings.Contains(out, "shown message") || !strings.Contains(out, "entries=3") {
		t.Errorf("expected warn line with key/value, got: %s", out)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", true)
	logger.Info("captured", "lines", 12000)

	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "{") || !strings.Contains(out, `"lines":12000`) {
		t.Errorf("expected JSON formatted line, got: %s", out)
	}
}
