package timetable

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Normalizer cleans raw portal entries and appends the derived
// ClassType, Batch and LastUpdated fields.
type Normalizer struct {
	Rules  Rules
	Logger *log.Logger

	// Now is the clock used for LastUpdated; defaults to time.Now
	Now func() time.Time
}

// NewNormalizer creates a Normalizer with the given classification rules.
// A nil logger falls back to the package-level charm logger.
func NewNormalizer(rules Rules, logger *log.Logger) *Normalizer {
	if logger == nil {
		logger = log.Default()
	}
	return &Normalizer{
		Rules:  rules,
		Logger: logger,
		Now:    time.Now,
	}
}

// Normalize rewrites every entry in place and returns the same slice.
// Entries are never dropped or reordered, and a failure while processing
// one entry leaves it partially normalized without affecting the rest.
func (n *Normalizer) Normalize(entries []Entry) []Entry {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	stamp := now().UTC().Format(TimestampLayout)

	for i, e := range entries {
		if e == nil {
			continue
		}
		if err := n.normalizeEntry(e, stamp); err != nil {
			n.logger().Warn("entry partially normalized", "index", i, "err", err)
		}
	}

	n.logger().Debug("normalized timetable", "entries", len(entries))
	return entries
}

func (n *Normalizer) normalizeEntry(e Entry, stamp string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while normalizing: %v", r)
		}
	}()

	if fp, ok := e[FieldFloorPlan].(map[string]any); ok {
		rewrite(fp, FieldVenueName, NormalizeWhitespace)
	}

	for _, t := range e.Objects(FieldTeacherList) {
		rewrite(t, FieldName, NormalizeWhitespace)
	}

	for _, cc := range e.Objects(FieldContextCombination) {
		rewrite(cc, FieldCourseFamilyCode, StripTrailingUnderscore)
	}

	for _, m := range e.Objects(FieldModuleList) {
		rewrite(m, FieldModuleCode, StripNumericSuffix)
		rewrite(m, FieldModuleName, NormalizeWhitespace, RemoveSpaceBeforeParen)
	}

	cohorts := e.Objects(FieldCohortList)
	for _, c := range cohorts {
		rewrite(c, FieldCode, StripUnderscoreSuffix)
		rewrite(c, FieldName, NormalizeWhitespace, RemoveSpaceBeforeParen)
	}

	start, hasStart := e.Field(FieldSlotStartTime)
	end, hasEnd := e.Field(FieldSlotEndTime)
	moduleCode, hasModule := e.FirstModuleCode()
	_, hasCohorts := e[FieldCohortList].([]any)
	if hasStart && hasEnd && hasModule && hasCohorts {
		if ct, ok := n.Rules.Classify(start, end, moduleCode, cohorts); ok {
			e[FieldClassType] = string(ct)
		}
	}

	if batches := CollectBatches(cohorts); batches != nil {
		e[FieldBatch] = batches
	} else {
		e[FieldBatch] = nil
	}

	e[FieldLastUpdated] = stamp
	return nil
}

func (n *Normalizer) logger() *log.Logger {
	if n.Logger == nil {
		return log.Default()
	}
	return n.Logger
}
