package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lienzo/models"
)

func TestComputeQuarterWithDiscount(t *testing.T) {
	q := Compute(50000, 3, 10)
	assert.Equal(t, int64(150000), q.Subtotal)
	assert.Equal(t, int64(15000), q.DiscountAmount)
	assert.Equal(t, int64(135000), q.FinalPrice)
}

func TestComputeSingleMonthNoDiscount(t *testing.T) {
	q := Compute(50000, 1, 0)
	assert.Equal(t, int64(50000), q.Subtotal)
	assert.Equal(t, int64(0), q.DiscountAmount)
	assert.Equal(t, int64(50000), q.FinalPrice)
}

func TestComputeRoundsHalfUpAtDiscountStep(t *testing.T) {
	// 250 × 25% = 62.5, rounded half-up to 63 in the single rounding step.
	q := Compute(250, 1, 25)
	assert.Equal(t, int64(250), q.Subtotal)
	assert.Equal(t, int64(63), q.DiscountAmount)
	assert.Equal(t, int64(187), q.FinalPrice)
}

func TestDiscountPercentFor(t *testing.T) {
	periods := []models.DiscountPeriod{
		{DurationMonths: 3, DiscountPercent: 10},
		{DurationMonths: 6, DiscountPercent: 20},
	}
	assert.Equal(t, 10, DiscountPercentFor(periods, 3))
	assert.Equal(t, 20, DiscountPercentFor(periods, 6))
	assert.Equal(t, 0, DiscountPercentFor(periods, 4), "no matching period means no discount")
	assert.Equal(t, 0, DiscountPercentFor(nil, 3))
}

func TestQuoteForPlanTrialBypassesDurationAndDiscount(t *testing.T) {
	trial := models.Plan{ID: "trial", ClassCount: 1, MonthlyPrice: 15000}
	periods := []models.DiscountPeriod{{DurationMonths: 6, DiscountPercent: 20}}

	q := QuoteForPlan(trial, 6, periods)
	assert.Equal(t, 1, q.DurationMonths)
	assert.Equal(t, int64(15000), q.Subtotal)
	assert.Equal(t, int64(0), q.DiscountAmount)
	assert.Equal(t, int64(15000), q.FinalPrice)
}

func TestQuoteForPlanAppliesPeriodDiscount(t *testing.T) {
	plan := models.Plan{ID: "p1", Type: models.PlanMonthly, ClassCount: 4, MonthlyPrice: 50000}
	periods := []models.DiscountPeriod{{DurationMonths: 3, DiscountPercent: 10}}

	q := QuoteForPlan(plan, 3, periods)
	assert.Equal(t, int64(135000), q.FinalPrice)
	assert.Equal(t, 3, q.DurationMonths)
}
