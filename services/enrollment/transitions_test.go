package enrollment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lienzo/models"
	"lienzo/services/schedule"
)

func testSelections() []models.SlotSelection {
	return []models.SlotSelection{
		{
			SectionID: "sec-1",
			CourseID:  "oil",
			Slot:      models.WeeklySlot{Day: models.Monday, Start: 600, End: 720},
		},
	}
}

// mondaysOpen opens every Monday for several months from the given Monday.
func mondaysOpen(start string, weeks int) map[string]schedule.OpenDateSet {
	base, _ := schedule.ParseDate(start)
	set := make(schedule.OpenDateSet)
	for w := 0; w < weeks; w++ {
		set[schedule.FormatDate(base.AddDate(0, 0, w*7))] = struct{}{}
	}
	return map[string]schedule.OpenDateSet{"sec-1": set}
}

func planMonthly4() models.Plan {
	return models.Plan{ID: "p1", Type: models.PlanMonthly, ClassCount: 4, MonthlyPrice: 50000}
}

func generatedDraft(t *testing.T) *models.EnrollmentDraft {
	t.Helper()
	draft := &models.EnrollmentDraft{DraftID: "d1"}
	require.NoError(t, ApplySlotSelection(draft, testSelections()))
	require.NoError(t, ApplyPlanSelection(draft, planMonthly4(), 1, "2026-03-02", mondaysOpen("2026-03-02", 20)))
	return draft
}

func TestApplySlotSelectionClearsDerivedState(t *testing.T) {
	draft := generatedDraft(t)
	require.NotEmpty(t, draft.Generated)

	require.NoError(t, ApplySlotSelection(draft, testSelections()))
	assert.Empty(t, draft.Generated)
	assert.Empty(t, draft.Overrides)
}

func TestApplySlotSelectionRejectsUnresolvedSection(t *testing.T) {
	draft := &models.EnrollmentDraft{}
	err := ApplySlotSelection(draft, []models.SlotSelection{{Slot: models.WeeklySlot{Day: models.Monday}}})
	assert.ErrorIs(t, err, ErrMissingSectionID)
}

func TestApplyPlanSelectionGeneratesSnapshot(t *testing.T) {
	draft := generatedDraft(t)

	require.Len(t, draft.Generated, 4)
	assert.Equal(t, "2026-03-02", draft.Generated[0].Date)
	assert.Equal(t, 1, draft.DurationMonths)
	assert.Empty(t, draft.Overrides)
}

func TestApplyPlanSelectionTrialForcesOneMonth(t *testing.T) {
	draft := &models.EnrollmentDraft{}
	require.NoError(t, ApplySlotSelection(draft, testSelections()))

	trial := models.Plan{ID: "trial", Type: models.PlanExtended, ClassCount: 1, MonthlyPrice: 15000}
	require.NoError(t, ApplyPlanSelection(draft, trial, 6, "2026-03-02", mondaysOpen("2026-03-02", 20)))

	assert.Equal(t, 1, draft.DurationMonths)
	assert.Len(t, draft.Generated, 1)
}

func TestApplyPlanSelectionPropagatesGeneratorErrors(t *testing.T) {
	draft := &models.EnrollmentDraft{}
	require.NoError(t, ApplySlotSelection(draft, testSelections()))

	err := ApplyPlanSelection(draft, planMonthly4(), 1, "", nil)
	assert.ErrorIs(t, err, schedule.ErrMissingStartDate)
}

func TestApplyDateOverrideRecordsWithoutMutatingSnapshot(t *testing.T) {
	draft := generatedDraft(t)
	now, _ := schedule.ParseDate("2026-03-01")

	// Swap entry 1 (2026-03-09) for the open Monday after the snapshot's last.
	err := ApplyDateOverride(draft, 1, "2026-03-30", mondaysOpen("2026-03-02", 20), now)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-09", draft.Generated[1].Date, "snapshot untouched")
	assert.Equal(t, "2026-03-30", draft.Overrides[1])
	assert.Equal(t, "2026-03-30", draft.EffectiveDates()[1].Date)
	assert.Empty(t, Conflicts(draft))
}

func TestApplyDateOverrideDuplicateIsSurfacedNotRejected(t *testing.T) {
	draft := generatedDraft(t)
	now, _ := schedule.ParseDate("2026-03-01")

	// Edit entry 2 to equal entry 0's date.
	err := ApplyDateOverride(draft, 2, "2026-03-02", mondaysOpen("2026-03-02", 20), now)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, Conflicts(draft))
	assert.False(t, schedule.IsValid(draft.EffectiveDates()))
}

func TestApplyDateOverrideValidation(t *testing.T) {
	open := mondaysOpen("2026-03-02", 20)
	now, _ := schedule.ParseDate("2026-03-10")

	cases := []struct {
		name    string
		index   int
		newDate string
		wantErr error
	}{
		{"index out of range", 9, "2026-03-30", ErrIndexOutOfRange},
		{"negative index", -1, "2026-03-30", ErrIndexOutOfRange},
		{"weekday mismatch", 1, "2026-03-31", ErrWeekdayMismatch}, // a Tuesday
		{"past date", 1, "2026-03-02", ErrPastDate},
		{"unavailable date", 1, "2026-09-28", ErrDateUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := generatedDraft(t)
			err := ApplyDateOverride(draft, tc.index, tc.newDate, open, now)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestApplyStudentInfo(t *testing.T) {
	draft := &models.EnrollmentDraft{}
	err := ApplyStudentInfo(draft, models.StudentInfo{Name: "Ana", Email: "ana@example.com", Phone: "+56911112222"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", draft.Student.Name)

	assert.ErrorIs(t, ApplyStudentInfo(draft, models.StudentInfo{Name: "", Email: "a@b", Phone: "1"}), ErrMissingStudent)
	assert.ErrorIs(t, ApplyStudentInfo(draft, models.StudentInfo{Name: "Ana", Email: "not-an-email", Phone: "1"}), ErrMissingStudent)
}

func TestReplacementCandidates(t *testing.T) {
	draft := generatedDraft(t)
	now, _ := schedule.ParseDate("2026-03-01")

	// Section calendar: Mondays plus one Tuesday that must be filtered out.
	openDates := []string{
		"2026-02-23", // past Monday
		"2026-03-02", // occupied by the draft
		"2026-03-30",
		"2026-03-31", // Tuesday
		"2026-04-06",
	}

	candidates, err := ReplacementCandidates(draft, 1, openDates, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-30", "2026-04-06"}, candidates)
}

func TestReplacementCandidatesIndexOutOfRange(t *testing.T) {
	draft := generatedDraft(t)
	_, err := ReplacementCandidates(draft, 42, nil, time.Now())
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
