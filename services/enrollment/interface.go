package enrollment

import (
	"context"

	enrollmentRepo "lienzo/database/repository/enrollment"
	"lienzo/models"
	"lienzo/services/catalog"
	"lienzo/services/payment"
	"lienzo/services/schedule"
)

// DraftView is the session state returned after every transition: the draft
// itself plus the derived bits the wizard renders (effective dates, conflict
// indexes, price quote).
type DraftView struct {
	Draft      *models.EnrollmentDraft `json:"draft"`
	ClassDates []models.ClassDate      `json:"classDates"`
	Conflicts  []int                   `json:"conflicts"`
	Valid      bool                    `json:"valid"`
	Quote      *schedule.Quote         `json:"quote,omitempty"`
}

// EnrollmentSessionService manages the stateful wizard draft: one Redis-backed
// session per wizard run, advanced step by step through typed transitions.
type EnrollmentSessionService interface {
	InitiateDraft(selections []models.SlotSelection) (*DraftView, error)
	GetDraft(draftID string) (*DraftView, error)
	SelectSlots(draftID string, selections []models.SlotSelection) (*DraftView, error)
	SelectPlan(draftID, planID string, durationMonths int, startDate string) (*DraftView, error)
	OverrideDate(draftID string, index int, newDate string) (*DraftView, error)
	ListReplacementDates(draftID string, index int) ([]string, error)
	SetStudentInfo(draftID string, info models.StudentInfo) (*DraftView, error)
	SetPaymentMethod(draftID string, methodID int) (*DraftView, error)
	CancelDraft(draftID string) error
}

// DefaultEnrollmentSessionService implements EnrollmentSessionService.
type DefaultEnrollmentSessionService struct {
	Catalog catalog.CatalogService
}

// SubmitResult is the outcome of an enrollment submission. Payment is non-nil
// when the chosen method requires a gateway redirect.
type SubmitResult struct {
	Enrollment *models.Enrollment       `json:"enrollment"`
	Payment    *models.TransbankPayment `json:"transbank_payment,omitempty"`
}

// EnrollmentService persists enrollments and drives the payment leg.
type EnrollmentService interface {
	Submit(ctx context.Context, payload models.EnrollmentPayload) (*SubmitResult, error)
	ConfirmDraft(draftID string) (*SubmitResult, error)
	ConfirmPayment(ctx context.Context, tokenWS string) (*models.TransbankCommitResult, error)
}

// DefaultEnrollmentService implements EnrollmentService.
type DefaultEnrollmentService struct {
	Repo     enrollmentRepo.EnrollmentRepository
	Catalog  catalog.CatalogService
	Gateway  payment.PaymentGateway
	Sessions EnrollmentSessionService
}
