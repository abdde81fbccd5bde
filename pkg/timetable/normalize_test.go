package timetable

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const rawEntries = `[
	{
		"Date": "2025-08-04",
		"FloorPlanDetails": {"VenueName": "  Block 10 \n Room   204 "},
		"TeacherList": [{"Name": "Dr.  Asha\tVerma "}, {"Name": 12}],
		"ContextCombination": [{"CourseFamilyCode": "BTECH__"}, {"CourseFamilyCode": "BTECH"}],
		"ModuleList": [{"ModuleCode": "CSEG1021_1_2", "ModuleName": "Programming  in C   (Lab) "}],
		"CohortList": [
			{"Code": "B.TECH-CSE-B1_X99", "Name": "CSE  B1  (2024)"},
			{"Code": "B.TECH-CSE-B2_X99", "Name": "CSE B2"}
		],
		"SlotStartTime": "09:00 AM",
		"SlotEndTime": "10:50 AM",
		"RoomCapacity": 60
	},
	{
		"ModuleList": [{"ModuleCode": "MATH1001_1", "ModuleName": "Calculus"}],
		"CohortList": [{"Code": "B.TECH-CSE-B3", "Name": "CSE B3"}],
		"SlotStartTime": "12:00 PM",
		"SlotEndTime": "12:50 PM"
	},
	{
		"ModuleList": [{"ModuleCode": "PHYS1002", "ModuleName": "Physics"}],
		"CohortList": [],
		"SlotEndTime": "12:50 PM"
	},
	{
		"Notes": "no recognised fields"
	}
]`

func decodeEntries(t *testing.T, raw string) []Entry {
	t.Helper()
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	return entries
}

func fixedNormalizer(at time.Time) *Normalizer {
	n := NewNormalizer(DefaultRules(), nil)
	n.Now = func() time.Time { return at }
	return n
}

func TestNormalize(t *testing.T) {
	entries := decodeEntries(t, rawEntries)
	at := time.Date(2025, 8, 1, 14, 30, 5, 999, time.FixedZone("IST", 5*3600+1800))

	out := fixedNormalizer(at).Normalize(entries)

	if len(out) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(out))
	}

	first := out[0]
	if got := first.Venue(); got != "Block 10 Room 204" {
		t.Errorf("expected normalized venue, got %q", got)
	}
	if diff := cmp.Diff([]string{"Dr. Asha Verma"}, first.Teachers()); diff != "" {
		t.Errorf("teacher names mismatch (-want +got):\n%s", diff)
	}
	teachers := first[FieldTeacherList].([]any)
	if teachers[1].(map[string]any)[FieldName] != 12.0 {
		t.Errorf("expected non-string teacher name to pass through")
	}

	cc := first.Objects(FieldContextCombination)
	if cc[0][FieldCourseFamilyCode] != "BTECH" || cc[1][FieldCourseFamilyCode] != "BTECH" {
		t.Errorf("expected trailing underscore stripped from course family codes, got %v", cc)
	}

	module := first.Objects(FieldModuleList)[0]
	if module[FieldModuleCode] != "CSEG1021" {
		t.Errorf("expected module code CSEG1021, got %v", module[FieldModuleCode])
	}
	if module[FieldModuleName] != "Programming in C(Lab)" {
		t.Errorf("expected module name 'Programming in C(Lab)', got %q", module[FieldModuleName])
	}

	cohorts := first.Objects(FieldCohortList)
	if cohorts[0][FieldCode] != "B.TECH-CSE-B1" {
		t.Errorf("expected cohort code suffix stripped, got %v", cohorts[0][FieldCode])
	}
	if cohorts[0][FieldName] != "CSE B1(2024)" {
		t.Errorf("expected cohort name 'CSE B1(2024)', got %q", cohorts[0][FieldName])
	}

	if first[FieldClassType] != string(ClassLab) {
		t.Errorf("expected 110 minute slot to be a LAB, got %v", first[FieldClassType])
	}
	if diff := cmp.Diff([]string{"B1", "B2"}, first.Batches()); diff != "" {
		t.Errorf("batch mismatch (-want +got):\n%s", diff)
	}
	if first[FieldLastUpdated] != "2025-08-01 09:00:05" {
		t.Errorf("expected UTC second-precision timestamp, got %v", first[FieldLastUpdated])
	}
	if first["RoomCapacity"] != 60.0 || first[FieldDate] != "2025-08-04" {
		t.Errorf("expected unknown fields to be preserved")
	}

	if out[1][FieldClassType] != string(ClassTutorial) {
		t.Errorf("expected math module with one cohort to be a Tutorial, got %v", out[1][FieldClassType])
	}

	// Missing SlotStartTime: no class type, processing continues
	third := out[2]
	if _, ok := third[FieldClassType]; ok {
		t.Errorf("expected no ClassType for entry without start time")
	}
	if v, ok := third[FieldBatch]; !ok || v != nil {
		t.Errorf("expected Batch to be null for empty cohort list, got %v", v)
	}

	fourth := out[3]
	if fourth["Notes"] != "no recognised fields" || fourth[FieldLastUpdated] == nil {
		t.Errorf("expected bare entry to pass through with a timestamp, got %v", fourth)
	}
}

func TestNormalizePreservesOrderAndIdentity(t *testing.T) {
	entries := decodeEntries(t, rawEntries)
	before := make([]Entry, len(entries))
	copy(before, entries)

	out := fixedNormalizer(time.Now()).Normalize(entries)

	if len(out) != len(before) {
		t.Fatalf("expected %d entries, got %d", len(before), len(out))
	}
	for i := range out {
		// Same map instances in the same positions
		out[i]["__marker"] = i
		if before[i]["__marker"] != i {
			t.Errorf("entry %d was replaced or reordered", i)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	first := fixedNormalizer(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
		Normalize(decodeEntries(t, rawEntries))

	// Round-trip through JSON as the output file would be re-read
	data, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	once := decodeEntries(t, string(data))
	twice := decodeEntries(t, string(data))

	fixedNormalizer(time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)).Normalize(twice)

	for i := range once {
		if twice[i][FieldLastUpdated] != "2025-02-02 00:00:00" {
			t.Errorf("expected LastUpdated to be refreshed on entry %d", i)
		}
		delete(once[i], FieldLastUpdated)
		delete(twice[i], FieldLastUpdated)
	}

	// The second pass writes []string batches; compare through JSON
	a, _ := json.Marshal(once)
	b, _ := json.Marshal(twice)
	if diff := cmp.Diff(string(a), string(b)); diff != "" {
		t.Errorf("second normalization changed entries (-once +twice):\n%s", diff)
	}
}

func TestNormalizeNilAndEmpty(t *testing.T) {
	n := fixedNormalizer(time.Now())

	if out := n.Normalize(nil); len(out) != 0 {
		t.Errorf("expected empty output for nil input, got %d", len(out))
	}

	entries := []Entry{nil, {"SlotStartTime": 900}}
	out := n.Normalize(entries)
	if len(out) != 2 || out[0] != nil {
		t.Fatalf("expected nil entry to be kept in place, got %v", out)
	}
	if _, ok := out[1][FieldClassType]; ok {
		t.Errorf("expected no ClassType for non-string start time")
	}
}
