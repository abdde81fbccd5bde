package timetable

import "strings"

// Defaults for Rules, matching the portal's current course catalogue
const (
	DefaultLongSlotMinutes      = 55
	DefaultTutorialModulePrefix = "MATH"
	DefaultLectureModuleCode    = "CSEG1021"
)

// Rules holds the constants used to infer a session's class type.
type Rules struct {
	// Sessions longer than this are labs
	LongSlotMinutes int `json:"long_slot_minutes"`
	// Single-cohort sessions of modules with this prefix are tutorials
	TutorialModulePrefix string `json:"tutorial_module_prefix"`
	// Sessions of exactly this module are lectures
	LectureModuleCode string `json:"lecture_module_code"`
}

// DefaultRules returns the built-in classification constants.
func DefaultRules() Rules {
	return Rules{
		LongSlotMinutes:      DefaultLongSlotMinutes,
		TutorialModulePrefix: DefaultTutorialModulePrefix,
		LectureModuleCode:    DefaultLectureModuleCode,
	}
}

// Classify infers the class type of a session. It reports false when the type
// cannot be determined: unparseable times, no cohorts or no module code.
func (r Rules) Classify(start, end, moduleCode string, cohorts []map[string]any) (ClassType, bool) {
	startMin, ok := ParseClock(start)
	if !ok {
		return "", false
	}
	endMin, ok := ParseClock(end)
	if !ok {
		return "", false
	}
	if len(cohorts) == 0 || moduleCode == "" {
		return "", false
	}

	switch {
	case endMin-startMin > r.LongSlotMinutes:
		return ClassLab, true
	case r.TutorialModulePrefix != "" && strings.HasPrefix(moduleCode, r.TutorialModulePrefix) && len(cohorts) == 1:
		return ClassTutorial, true
	case r.LectureModuleCode != "" && moduleCode == r.LectureModuleCode:
		return ClassLecture, true
	default:
		return ClassTheory, true
	}
}
