package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kushgbisen/upeschedule/pkg/timetable"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// uidNamespace scopes the name-based event UIDs so re-exports of the same
// session keep the same UID and calendar clients update instead of duplicating.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://myupes-beta.upes.ac.in/timetable"))

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// campusLocation returns the portal's timezone (India has no DST, so a fixed
// zone is an exact fallback when tzdata is unavailable).
func campusLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// parseDate reads the entry's Date field in any of the formats the portal uses.
func parseDate(e timetable.Entry) (time.Time, bool) {
	raw, ok := e.Field(timetable.FieldDate)
	if !ok {
		return time.Time{}, false
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// sessionTimes resolves the absolute start and end of an entry.
func sessionTimes(e timetable.Entry, loc *time.Location) (time.Time, time.Time, bool) {
	day, ok := parseDate(e)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	startStr, _ := e.Field(timetable.FieldSlotStartTime)
	endStr, _ := e.Field(timetable.FieldSlotEndTime)

	startMin, ok := timetable.ParseClock(startStr)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	endMin, ok := timetable.ParseClock(endStr)
	if !ok || endMin <= startMin {
		return time.Time{}, time.Time{}, false
	}

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	return midnight.Add(time.Duration(startMin) * time.Minute), midnight.Add(time.Duration(endMin) * time.Minute), true
}

// eventKey identifies a session independent of its position in the capture.
func eventKey(e timetable.Entry, start time.Time) string {
	code, _ := e.FirstModuleCode()
	var cohorts []string
	for _, c := range e.Objects(timetable.FieldCohortList) {
		if s, ok := c[timetable.FieldCode].(string); ok {
			cohorts = append(cohorts, s)
		}
	}
	return fmt.Sprintf("%s|%s|%s|%s", code, start.UTC().Format(time.RFC3339), e.Venue(), strings.Join(cohorts, ","))
}

// summaryOf picks the calendar title for an entry.
func summaryOf(e timetable.Entry) string {
	if name := e.FirstModuleName(); name != "" {
		return name
	}
	if code, ok := e.FirstModuleCode(); ok && code != "" {
		return code
	}
	return "Class"
}

func describe(e timetable.Entry) string {
	var lines []string
	if ct, ok := e.Field(timetable.FieldClassType); ok && ct != "" {
		lines = append(lines, "Type: "+ct)
	}
	if code, ok := e.FirstModuleCode(); ok && code != "" {
		lines = append(lines, "Module: "+code)
	}
	if teachers := e.Teachers(); len(teachers) > 0 {
		lines = append(lines, "Teachers: "+strings.Join(teachers, ", "))
	}
	if batches := e.Batches(); len(batches) > 0 {
		lines = append(lines, "Batch: "+strings.Join(batches, ", "))
	}
	return strings.Join(lines, "\n")
}

// GenerateICS creates an ICS calendar from normalized entries and writes it to w.
// Entries without a usable date or slot times are skipped; the number of
// exported events is returned.
func GenerateICS(entries []timetable.Entry, w io.Writer) (int, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//upeschedule//Timetable//EN")

	loc := campusLocation()
	now := time.Now()
	seen := make(map[string]int)
	exported := 0

	for _, e := range entries {
		if e == nil {
			continue
		}
		start, end, ok := sessionTimes(e, loc)
		if !ok {
			continue // Skip entries we cannot place on the calendar
		}

		key := eventKey(e, start)
		seen[key]++
		if n := seen[key]; n > 1 {
			key = fmt.Sprintf("%s#%d", key, n)
		}

		event := cal.AddEvent(uuid.NewSHA1(uidNamespace, []byte(key)).String())
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(summaryOf(e))
		if venue := e.Venue(); venue != "" {
			event.SetLocation(venue)
		}
		if desc := describe(e); desc != "" {
			event.SetDescription(desc)
		}
		exported++
	}

	if err := cal.SerializeTo(w); err != nil {
		return 0, fmt.Errorf("failed to serialize calendar: %w", err)
	}
	return exported, nil
}
