package schedule

import (
	"github.com/shopspring/decimal"

	"lienzo/models"
)

// Quote is the price breakdown shown at the payment step. Amounts are whole
// pesos.
type Quote struct {
	Subtotal       int64 `json:"subtotal"`
	DiscountAmount int64 `json:"discountAmount"`
	FinalPrice     int64 `json:"finalPrice"`
	DurationMonths int   `json:"durationMonths"`
}

// DiscountPercentFor looks up the discount for a duration. A duration with no
// matching period carries no discount.
func DiscountPercentFor(periods []models.DiscountPeriod, durationMonths int) int {
	for _, p := range periods {
		if p.DurationMonths == durationMonths {
			return p.DiscountPercent
		}
	}
	return 0
}

// Compute prices an enrollment: subtotal = monthlyPrice × durationMonths,
// discount applied as a percentage rounded half-up at that single step, final
// price = subtotal − discount. No intermediate value is rounded.
func Compute(monthlyPrice int64, durationMonths int, discountPercent int) Quote {
	subtotal := monthlyPrice * int64(durationMonths)

	discount := decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromInt(int64(discountPercent))).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	return Quote{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		FinalPrice:     subtotal - discount,
		DurationMonths: durationMonths,
	}
}

// QuoteForPlan prices a plan over a duration against the discount table.
// Trial plans bypass duration and discounts entirely: one month at base
// price, whatever duration was requested.
func QuoteForPlan(plan models.Plan, durationMonths int, periods []models.DiscountPeriod) Quote {
	if plan.IsTrial() {
		return Quote{
			Subtotal:       plan.MonthlyPrice,
			DiscountAmount: 0,
			FinalPrice:     plan.MonthlyPrice,
			DurationMonths: 1,
		}
	}
	return Compute(plan.MonthlyPrice, durationMonths, DiscountPercentFor(periods, durationMonths))
}
