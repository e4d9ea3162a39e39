package models

import "sort"

// ClassDate is one scheduled session: a calendar date (ISO "2006-01-02")
// tagged with the section it belongs to. The tag is what lets multi-slot
// enrollments group dates back onto the right section at assembly time.
type ClassDate struct {
	SectionID string `json:"sectionId"`
	Date      string `json:"date"`
}

// SlotSelection pins one chosen weekly slot to its resolved section.
type SlotSelection struct {
	SectionID string     `json:"sectionId"`
	CourseID  string     `json:"courseId"`
	Slot      WeeklySlot `json:"slot"`
}

// StudentInfo is the personal data step of the wizard.
type StudentInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// EnrollmentDraft holds wizard state between steps. It lives in Redis under a
// short TTL so a reload resumes the session and an abandoned one expires.
//
// Generated is the immutable snapshot produced by the date engine; user edits
// land in Overrides (index into Generated -> replacement date) and the two are
// merged on read. The snapshot is never mutated in place.
type EnrollmentDraft struct {
	DraftID         string          `json:"draftId"`
	Selections      []SlotSelection `json:"selections"`
	Plan            *Plan           `json:"plan,omitempty"`
	DurationMonths  int             `json:"durationMonths"`
	StartDate       string          `json:"startDate,omitempty"`
	Generated       []ClassDate     `json:"generated,omitempty"`
	Overrides       map[int]string  `json:"overrides,omitempty"`
	Student         *StudentInfo    `json:"student,omitempty"`
	PaymentMethodID int             `json:"paymentMethodId,omitempty"`
}

// EffectiveDates merges the generated snapshot with any user overrides,
// returning the class list the rest of the flow (conflict checks, assembly)
// operates on. Out-of-range override indexes are ignored.
func (d *EnrollmentDraft) EffectiveDates() []ClassDate {
	dates := make([]ClassDate, len(d.Generated))
	copy(dates, d.Generated)
	for idx, date := range d.Overrides {
		if idx >= 0 && idx < len(dates) {
			dates[idx].Date = date
		}
	}
	return dates
}

// SectionIDs returns the distinct section ids across the draft's selections,
// in selection order.
func (d *EnrollmentDraft) SectionIDs() []string {
	seen := make(map[string]struct{}, len(d.Selections))
	ids := make([]string, 0, len(d.Selections))
	for _, sel := range d.Selections {
		if _, ok := seen[sel.SectionID]; ok {
			continue
		}
		seen[sel.SectionID] = struct{}{}
		ids = append(ids, sel.SectionID)
	}
	return ids
}

// SortClassDates orders a class list ascending by date, breaking ties by
// section id so output is stable across runs.
func SortClassDates(dates []ClassDate) {
	sort.Slice(dates, func(i, j int) bool {
		if dates[i].Date != dates[j].Date {
			return dates[i].Date < dates[j].Date
		}
		return dates[i].SectionID < dates[j].SectionID
	})
}
