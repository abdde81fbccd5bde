package timetable

import (
	"sort"
	"strings"
)

// ExtractBatch returns the last dash-separated component of a cohort code,
// e.g. "B.TECH-CSE-B1" -> "B1". Codes without a dash, or ending in one, have no batch.
func ExtractBatch(code string) (string, bool) {
	i := strings.LastIndex(code, "-")
	if i < 0 || i == len(code)-1 {
		return "", false
	}
	return code[i+1:], true
}

// CollectBatches extracts the distinct batches of a cohort list.
// It returns nil when no cohort yields a batch. The result is sorted so
// that repeated runs produce identical output.
func CollectBatches(cohorts []map[string]any) []string {
	seen := make(map[string]bool)
	var batches []string

	for _, c := range cohorts {
		code, ok := c[FieldCode].(string)
		if !ok {
			continue
		}
		b, ok := ExtractBatch(code)
		if !ok || seen[b] {
			continue
		}
		seen[b] = true
		batches = append(batches, b)
	}

	if len(batches) == 0 {
		return nil
	}
	sort.Strings(batches)
	return batches
}
