package timetable

import "sort"

// Unclassified is the summary bucket for entries without a ClassType
const Unclassified = "Unclassified"

// Summary counts normalized entries by class type and by batch.
type Summary struct {
	Total       int
	ByClassType map[string]int
	ByBatch     map[string]int
}

// Summarize builds a Summary over normalized entries.
func Summarize(entries []Entry) Summary {
	s := Summary{
		ByClassType: make(map[string]int),
		ByBatch:     make(map[string]int),
	}

	for _, e := range entries {
		if e == nil {
			continue
		}
		s.Total++

		ct, ok := e.Field(FieldClassType)
		if !ok || ct == "" {
			ct = Unclassified
		}
		s.ByClassType[ct]++

		for _, b := range e.Batches() {
			s.ByBatch[b]++
		}
	}

	return s
}

// ClassTypes returns the class types present in the summary in display order:
// the known types first, then anything else alphabetically, Unclassified last.
func (s Summary) ClassTypes() []string {
	order := map[string]int{
		string(ClassLab):      0,
		string(ClassTutorial): 1,
		string(ClassLecture):  2,
		string(ClassTheory):   3,
		Unclassified:          5,
	}
	rank := func(k string) int {
		if r, ok := order[k]; ok {
			return r
		}
		return 4
	}

	keys := make([]string, 0, len(s.ByClassType))
	for k := range s.ByClassType {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// BatchNames returns the batches in the summary, sorted.
func (s Summary) BatchNames() []string {
	keys := make([]string, 0, len(s.ByBatch))
	for k := range s.ByBatch {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
