package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a --log-level flag value to a charm log level.
// Unknown values fall back to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level string, asJSON bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "upeschedule",
	})
	if asJSON {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger
}

// Setup configures the package-level default logger on stderr and returns it.
func Setup(level string, asJSON bool) *log.Logger {
	logger := New(os.Stderr, level, asJSON)
	log.SetDefault(logger)
	return logger
}
