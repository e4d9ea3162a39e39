package models

// Distribution modes for a payment plan.
const (
	PlanMonthly  = "monthly"  // classCount sessions packed within each calendar month
	PlanExtended = "extended" // classCount sessions spread one per week per slot
)

// Plan is a payment plan: how many classes, how they distribute over the
// calendar, and the monthly base price in whole pesos.
type Plan struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Type         string `bson:"type" json:"plan_type"`
	ClassCount   int    `bson:"classCount" json:"number_of_classes"`
	MonthlyPrice int64  `bson:"monthlyPrice" json:"price"`
	MaxCourses   int    `bson:"maxCourses,omitempty" json:"max_courses,omitempty"`
}

// IsTrial reports whether the plan is a single trial session. Trial plans
// bypass duration and discounts entirely: one class, one month, base price.
func (p Plan) IsTrial() bool {
	return p.ClassCount == 1
}

// DiscountPeriod maps an enrollment duration to a percentage discount.
// Selecting a duration applies at most one matching period.
type DiscountPeriod struct {
	DurationMonths  int `bson:"durationMonths" json:"duration_months"`
	DiscountPercent int `bson:"discountPercent" json:"discount_percent"`
}

// PaymentMethod is a way to pay offered at checkout (Webpay, transfer, ...).
type PaymentMethod struct {
	ID   int    `bson:"id" json:"id"`
	Name string `bson:"name" json:"payment_method"`
}
