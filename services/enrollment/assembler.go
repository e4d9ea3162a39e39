// File: services/enrollment/assembler.go
package enrollment

import (
	"sort"

	"lienzo/models"
	"lienzo/services/schedule"
)

// Assemble folds a completed draft into the POST /enrollments wire payload.
// It refuses to produce a payload for an invalid draft: missing section ids,
// an empty date list or unresolved duplicates never reach the network layer.
//
// Class dates are grouped by their originating section so one slot's dates
// are never attributed to another's section id, and start_date is the
// minimum date across all sessions. After edits this can differ from the
// date the user originally clicked.
func Assemble(draft *models.EnrollmentDraft, quote schedule.Quote) (*models.EnrollmentPayload, error) {
	if len(draft.Selections) == 0 {
		return nil, ErrMissingSelections
	}
	for _, sel := range draft.Selections {
		if sel.SectionID == "" {
			return nil, ErrMissingSectionID
		}
	}
	if draft.Plan == nil {
		return nil, ErrMissingPlan
	}
	if draft.Student == nil {
		return nil, ErrMissingStudent
	}
	if draft.PaymentMethodID <= 0 {
		return nil, ErrMissingPaymentMethod
	}

	dates := draft.EffectiveDates()
	if len(dates) == 0 {
		return nil, ErrEmptyDates
	}
	if !schedule.IsValid(dates) {
		return nil, ErrDuplicateDates
	}

	sectionDates := make(map[string][]string)
	startDate := ""
	for _, d := range dates {
		date := schedule.DateOnly(d.Date)
		sectionDates[d.SectionID] = append(sectionDates[d.SectionID], date)
		if startDate == "" || date < startDate {
			startDate = date
		}
	}
	for id := range sectionDates {
		sort.Strings(sectionDates[id])
	}

	return &models.EnrollmentPayload{
		Name:             draft.Student.Name,
		Email:            draft.Student.Email,
		Phone:            draft.Student.Phone,
		SectionIDs:       draft.SectionIDs(),
		PaymentPlanID:    draft.Plan.ID,
		PaymentMethodID:  draft.PaymentMethodID,
		EnrollmentAmount: quote.FinalPrice,
		TotalTuitionFee:  quote.Subtotal,
		StartDate:        startDate,
		SectionDates:     sectionDates,
	}, nil
}

// ValidatePayload applies the assembler preconditions to an externally built
// payload (the direct POST /enrollments path): same duplicate scope, and the
// start_date and amount fields must be internally consistent, matching what
// Assemble guarantees for draft-built payloads.
func ValidatePayload(p *models.EnrollmentPayload) error {
	if p.Name == "" || p.Email == "" {
		return ErrMissingStudent
	}
	if len(p.SectionIDs) == 0 {
		return ErrMissingSectionID
	}
	if p.PaymentPlanID == "" {
		return ErrMissingPlan
	}
	if p.PaymentMethodID <= 0 {
		return ErrMissingPaymentMethod
	}
	if p.EnrollmentAmount < 0 || p.TotalTuitionFee < p.EnrollmentAmount {
		return ErrInvalidAmount
	}

	total := 0
	minDate := ""
	for sectionID, dates := range p.SectionDates {
		if sectionID == "" {
			return ErrMissingSectionID
		}
		total += len(dates)
		list := make([]models.ClassDate, len(dates))
		for i, d := range dates {
			list[i] = models.ClassDate{SectionID: sectionID, Date: d}
			if date := schedule.DateOnly(d); minDate == "" || date < minDate {
				minDate = date
			}
		}
		if !schedule.IsValid(list) {
			return ErrDuplicateDates
		}
	}
	if total == 0 {
		return ErrEmptyDates
	}
	if schedule.DateOnly(p.StartDate) != minDate {
		return ErrInvalidStartDate
	}
	return nil
}
