package schedule

import (
	"time"

	"lienzo/models"
)

// SessionTotal is the number of class dates a plan requires over a duration.
// Monthly plans pack ClassCount sessions into each month; extended plans
// spread ClassCount sessions one per week. Trial plans are always a single
// session.
func SessionTotal(plan models.Plan, durationMonths int) int {
	if plan.IsTrial() {
		return 1
	}
	if plan.Type == models.PlanMonthly {
		return plan.ClassCount * durationMonths
	}
	return plan.ClassCount
}

// slotQuotas divides total sessions across the selected slots. When the count
// does not divide evenly the remainder lands on the earlier slots, in
// selection order, which keeps the split deterministic.
func slotQuotas(total, slots int) []int {
	quotas := make([]int, slots)
	base := total / slots
	rem := total % slots
	for i := range quotas {
		quotas[i] = base
		if i < rem {
			quotas[i]++
		}
	}
	return quotas
}

// Generate computes the concrete class dates for the chosen weekly slots,
// plan and start date. Each slot is walked as a weekly recurrence: the first
// date on or after startDate matching the slot's weekday is found by a
// day-by-day scan, after which the walk steps seven days at a time. A
// candidate missing from its section's open set is skipped and the walk
// continues forward; the session count is never silently truncated.
//
// The walk is bounded at durationMonths+1 months past startDate. Running out
// of horizon before every session is placed yields
// ErrInsufficientAvailability.
//
// Output is tagged with the originating section, sorted ascending across all
// slots.
func Generate(
	selections []models.SlotSelection,
	plan models.Plan,
	startDate string,
	durationMonths int,
	open map[string]OpenDateSet,
) ([]models.ClassDate, error) {
	if startDate == "" {
		return nil, ErrMissingStartDate
	}
	if len(selections) == 0 {
		return nil, ErrNoSlots
	}
	if plan.IsTrial() {
		durationMonths = 1
	}
	if durationMonths < 1 {
		durationMonths = 1
	}

	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	horizon := start.AddDate(0, durationMonths+1, 0)

	total := SessionTotal(plan, durationMonths)
	quotas := slotQuotas(total, len(selections))

	dates := make([]models.ClassDate, 0, total)
	for i, sel := range selections {
		slotDates, err := generateForSlot(sel, quotas[i], start, horizon, open[sel.SectionID])
		if err != nil {
			return nil, err
		}
		dates = append(dates, slotDates...)
	}

	models.SortClassDates(dates)
	return dates, nil
}

// generateForSlot walks one weekly slot forward from start, collecting the
// first `needed` open dates on the slot's weekday.
func generateForSlot(
	sel models.SlotSelection,
	needed int,
	start, horizon time.Time,
	open OpenDateSet,
) ([]models.ClassDate, error) {
	weekday, ok := sel.Slot.Day.TimeWeekday()
	if !ok {
		return nil, ErrInvalidWeekday
	}

	// Day-by-day only until the first weekday hit; a weekly recurrence after.
	cursor := start
	for cursor.Weekday() != weekday {
		cursor = cursor.AddDate(0, 0, 1)
	}

	dates := make([]models.ClassDate, 0, needed)
	for len(dates) < needed {
		if cursor.After(horizon) {
			return nil, ErrInsufficientAvailability
		}
		date := FormatDate(cursor)
		if open.Contains(date) {
			dates = append(dates, models.ClassDate{SectionID: sel.SectionID, Date: date})
		}
		cursor = cursor.AddDate(0, 0, 7)
	}
	return dates, nil
}
