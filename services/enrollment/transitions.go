// File: services/enrollment/transitions.go
//
// Pure transitions over an EnrollmentDraft. Every wizard step is a function
// from (draft, input) to a mutated draft or a recoverable error, with no I/O,
// so the whole step machine is testable without Redis or HTTP.
package enrollment

import (
	"strings"
	"time"

	"lienzo/models"
	"lienzo/services/schedule"
)

// ApplySlotSelection replaces the draft's chosen weekly slots. Any previously
// generated dates are dropped since they derive from the old schedule.
func ApplySlotSelection(draft *models.EnrollmentDraft, selections []models.SlotSelection) error {
	if len(selections) == 0 {
		return ErrMissingSelections
	}
	for _, sel := range selections {
		if sel.SectionID == "" {
			return ErrMissingSectionID
		}
		if !sel.Slot.Day.Valid() {
			return schedule.ErrInvalidWeekday
		}
	}
	draft.Selections = selections
	draft.Generated = nil
	draft.Overrides = nil
	return nil
}

// ApplyPlanSelection sets the plan, duration and start date, and regenerates
// the class-date snapshot against the supplied open-date sets. Overrides are
// cleared: they indexed the previous snapshot. Trial plans force a duration
// of one month.
func ApplyPlanSelection(
	draft *models.EnrollmentDraft,
	plan models.Plan,
	durationMonths int,
	startDate string,
	open map[string]schedule.OpenDateSet,
) error {
	if len(draft.Selections) == 0 {
		return ErrMissingSelections
	}
	if plan.IsTrial() {
		durationMonths = 1
	}

	generated, err := schedule.Generate(draft.Selections, plan, startDate, durationMonths, open)
	if err != nil {
		return err
	}

	draft.Plan = &plan
	draft.DurationMonths = durationMonths
	draft.StartDate = startDate
	draft.Generated = generated
	draft.Overrides = nil
	return nil
}

// ApplyDateOverride swaps the class at index for another date. The
// replacement must fall on the entry's original weekday, must not be in the
// past (date-only, relative to now) and must be open for the entry's section.
// The override lands in the overrides map; the generated snapshot is never
// touched. A resulting duplicate is allowed here and surfaced by Conflicts;
// confirmation is blocked, not the edit.
func ApplyDateOverride(
	draft *models.EnrollmentDraft,
	index int,
	newDate string,
	open map[string]schedule.OpenDateSet,
	now time.Time,
) error {
	if index < 0 || index >= len(draft.Generated) {
		return ErrIndexOutOfRange
	}
	entry := draft.Generated[index]

	original, err := schedule.ParseDate(entry.Date)
	if err != nil {
		return err
	}
	replacement, err := schedule.ParseDate(newDate)
	if err != nil {
		return err
	}
	if replacement.Weekday() != original.Weekday() {
		return ErrWeekdayMismatch
	}
	if schedule.DateOnly(newDate) < schedule.FormatDate(now) {
		return ErrPastDate
	}
	if !open[entry.SectionID].Contains(newDate) {
		return ErrDateUnavailable
	}

	if draft.Overrides == nil {
		draft.Overrides = make(map[int]string)
	}
	draft.Overrides[index] = schedule.DateOnly(newDate)
	return nil
}

// ApplyStudentInfo records the personal-data step.
func ApplyStudentInfo(draft *models.EnrollmentDraft, info models.StudentInfo) error {
	if strings.TrimSpace(info.Name) == "" ||
		strings.TrimSpace(info.Phone) == "" ||
		!strings.Contains(info.Email, "@") {
		return ErrMissingStudent
	}
	draft.Student = &info
	return nil
}

// ApplyPaymentMethod records the chosen payment method.
func ApplyPaymentMethod(draft *models.EnrollmentDraft, methodID int) error {
	if methodID <= 0 {
		return ErrMissingPaymentMethod
	}
	draft.PaymentMethodID = methodID
	return nil
}

// Conflicts returns the indexes of the draft's effective date list whose date
// collides with another entry of the same section, every occurrence included.
func Conflicts(draft *models.EnrollmentDraft) []int {
	return schedule.DuplicateIndexes(draft.EffectiveDates())
}

// ReplacementCandidates lists the dates a given entry may be swapped to: the
// section's open dates restricted to the entry's original weekday, excluding
// past dates and the dates the entry's section already occupies.
func ReplacementCandidates(
	draft *models.EnrollmentDraft,
	index int,
	openDates []string,
	now time.Time,
) ([]string, error) {
	if index < 0 || index >= len(draft.Generated) {
		return nil, ErrIndexOutOfRange
	}
	entry := draft.Generated[index]
	original, err := schedule.ParseDate(entry.Date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{})
	for _, d := range draft.EffectiveDates() {
		if d.SectionID == entry.SectionID {
			taken[schedule.DateOnly(d.Date)] = struct{}{}
		}
	}

	today := schedule.FormatDate(now)
	candidates := make([]string, 0, len(openDates))
	for _, raw := range openDates {
		date := schedule.DateOnly(raw)
		parsed, err := schedule.ParseDate(date)
		if err != nil {
			continue
		}
		if parsed.Weekday() != original.Weekday() || date < today {
			continue
		}
		if _, occupied := taken[date]; occupied {
			continue
		}
		candidates = append(candidates, date)
	}
	return candidates, nil
}
