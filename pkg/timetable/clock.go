package timetable

import (
	"strings"
	"time"
)

// clockLayouts accept "09:00 AM", "9:00 AM" and "09:00AM"
var clockLayouts = []string{"3:04 PM", "3:04PM"}

// ParseClock converts a 12-hour clock string into minutes since midnight.
// The second return value is false for empty or malformed input.
// 12:00 AM is minute 0 and 12:00 PM is minute 720.
func ParseClock(s string) (int, bool) {
	s = strings.ToUpper(NormalizeWhitespace(s))
	if s == "" {
		return 0, false
	}
	// time.Parse takes hour 0 for "3", which no 12-hour clock shows
	if hour, _, ok := strings.Cut(s, ":"); !ok || strings.Trim(hour, "0") == "" {
		return 0, false
	}

	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}
