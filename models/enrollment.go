package models

import "time"

// Enrollment statuses.
const (
	EnrollmentStatusPending   = "pending"    // created, awaiting gateway confirmation
	EnrollmentStatusPaid      = "paid"       // gateway authorized the payment
	EnrollmentStatusRejected  = "rejected"   // gateway declined
	EnrollmentStatusConfirmed = "confirmed"  // non-gateway method, confirmed directly
)

// EnrollmentPayload is the wire contract of POST /enrollments: the assembled,
// validated draft. SectionDates groups each section's class dates under its
// own id; StartDate is the minimum date across all sessions.
type EnrollmentPayload struct {
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	SectionIDs       []string            `json:"section_ids"`
	PaymentPlanID    string              `json:"payment_plan_id"`
	PaymentMethodID  int                 `json:"payment_method_id"`
	EnrollmentAmount int64               `json:"enrollment_amount"`
	TotalTuitionFee  int64               `json:"total_tuition_fee"`
	StartDate        string              `json:"start_date"`
	SectionDates     map[string][]string `json:"section_dates"`
}

// Enrollment is the persisted record, keyed by the buy order handed to the
// payment gateway.
type Enrollment struct {
	ID        string           `bson:"id" json:"id"`
	BuyOrder  string           `bson:"buyOrder" json:"buyOrder"`
	Status    string           `bson:"status" json:"status"`
	Payload   EnrollmentPayload `bson:"payload" json:"payload"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time        `bson:"updatedAt" json:"updatedAt"`
}
