package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kushgbisen/upeschedule/pkg/timetable"
)

// snapshotDuration determines how long a normalized timetable is served from the cache
const snapshotDuration = 12 * time.Hour

// Snapshot represents the disk data format of the last normalized run
type Snapshot struct {
	Timestamp time.Time         `json:"timestamp"`
	Source    string            `json:"source,omitempty"`
	Entries   []timetable.Entry `json:"entries"`
}

func getSnapshotPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".upeschedule_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, "timetable.json"), nil
}

// LoadSnapshot returns the cached timetable if one exists and has not expired.
func LoadSnapshot() (*Snapshot, bool) {
	path, err := getSnapshotPath()
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false // File doesn't exist or can't be read
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false
	}

	if time.Since(snap.Timestamp) > snapshotDuration {
		return nil, false // Expired
	}

	return &snap, true
}

// SaveSnapshot caches a normalized timetable for later export and summary commands.
func SaveSnapshot(source string, entries []timetable.Entry) error {
	path, err := getSnapshotPath()
	if err != nil {
		return err
	}

	snap := Snapshot{
		Timestamp: time.Now(),
		Source:    source,
		Entries:   entries,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
