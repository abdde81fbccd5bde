package timetable

// Entry is a single class session as returned by the portal's timetable endpoint.
// Fields the normalizer does not know about are carried through untouched.
type Entry map[string]any

// Keys of the portal payload that the normalizer reads or writes
const (
	FieldFloorPlan          = "FloorPlanDetails"
	FieldVenueName          = "VenueName"
	FieldTeacherList        = "TeacherList"
	FieldName               = "Name"
	FieldContextCombination = "ContextCombination"
	FieldCourseFamilyCode   = "CourseFamilyCode"
	FieldModuleList         = "ModuleList"
	FieldModuleCode         = "ModuleCode"
	FieldModuleName         = "ModuleName"
	FieldCohortList         = "CohortList"
	FieldCode               = "Code"
	FieldSlotStartTime      = "SlotStartTime"
	FieldSlotEndTime        = "SlotEndTime"
	FieldDate               = "Date"

	// Derived fields
	FieldClassType   = "ClassType"
	FieldBatch       = "Batch"
	FieldLastUpdated = "LastUpdated"
)

// TimestampLayout is the format of the LastUpdated field (UTC, second precision)
const TimestampLayout = "2006-01-02 15:04:05"

// ClassType is the teaching format of a session
type ClassType string

const (
	ClassLab      ClassType = "LAB"
	ClassTutorial ClassType = "Tutorial"
	ClassLecture  ClassType = "Lecture"
	ClassTheory   ClassType = "Theory"
)

// Field reads a string field, reporting false if it is absent or not a string.
func (e Entry) Field(key string) (string, bool) {
	s, ok := e[key].(string)
	return s, ok
}

// Objects returns the JSON objects stored in a list field, skipping any element
// that is not an object.
func (e Entry) Objects(key string) []map[string]any {
	return objects(e[key])
}

// FirstModuleCode returns the code of the first module in ModuleList.
func (e Entry) FirstModuleCode() (string, bool) {
	list, ok := e[FieldModuleList].([]any)
	if !ok || len(list) == 0 {
		return "", false
	}
	m, ok := list[0].(map[string]any)
	if !ok {
		return "", false
	}
	code, ok := m[FieldModuleCode].(string)
	return code, ok
}

// FirstModuleName returns the name of the first module in ModuleList.
func (e Entry) FirstModuleName() string {
	for _, m := range e.Objects(FieldModuleList) {
		if name, ok := m[FieldModuleName].(string); ok {
			return name
		}
	}
	return ""
}

// Venue returns the venue name, or an empty string.
func (e Entry) Venue() string {
	fp, ok := e[FieldFloorPlan].(map[string]any)
	if !ok {
		return ""
	}
	venue, _ := fp[FieldVenueName].(string)
	return venue
}

// Teachers returns all teacher names in list order.
func (e Entry) Teachers() []string {
	var names []string
	for _, t := range e.Objects(FieldTeacherList) {
		if name, ok := t[FieldName].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Batches returns the derived Batch field. It accepts both the in-memory form
// written by the normalizer and the generic form produced by decoding JSON.
func (e Entry) Batches() []string {
	switch v := e[FieldBatch].(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, b := range v {
			if s, ok := b.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func objects(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []map[string]any
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
