package timetable

import (
	"regexp"
	"strings"
)

var (
	numericSuffix    = regexp.MustCompile(`(_\d+)+$`)
	spaceBeforeParen = regexp.MustCompile(`\s+\(`)
)

// NormalizeWhitespace collapses every run of whitespace (spaces, tabs, newlines)
// to a single space and trims both ends.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// StripNumericSuffix removes trailing "_<digits>" groups from a module code,
// e.g. "CSEG1021_2" -> "CSEG1021" and "CSEG1021_1_2" -> "CSEG1021".
func StripNumericSuffix(code string) string {
	return numericSuffix.ReplaceAllString(code, "")
}

// StripTrailingUnderscore removes trailing underscores, e.g. "FAM__" -> "FAM".
func StripTrailingUnderscore(code string) string {
	return strings.TrimRight(code, "_")
}

// StripUnderscoreSuffix cuts a cohort code at its first underscore,
// e.g. "B2024-CS-01_X99" -> "B2024-CS-01".
func StripUnderscoreSuffix(code string) string {
	if i := strings.Index(code, "_"); i >= 0 {
		return code[:i]
	}
	return code
}

// RemoveSpaceBeforeParen drops whitespace directly in front of "(",
// e.g. "Intro to CS (Lab)" -> "Intro to CS(Lab)".
func RemoveSpaceBeforeParen(text string) string {
	return spaceBeforeParen.ReplaceAllString(text, "(")
}

// rewrite applies fns in order to m[key] when it holds a string.
// Absent keys and values of any other type are left alone.
func rewrite(m map[string]any, key string, fns ...func(string) string) {
	s, ok := m[key].(string)
	if !ok {
		return
	}
	for _, fn := range fns {
		s = fn(s)
	}
	m[key] = s
}
