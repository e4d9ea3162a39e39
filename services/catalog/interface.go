package catalog

import (
	"context"

	catalogRepo "lienzo/database/repository/catalog"
	"lienzo/models"
)

// CatalogService is the read side of the enrollment wizard: course and plan
// listings, the normalized schedule grid, and per-section open-date sets.
type CatalogService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	BuildScheduleGrid(ctx context.Context) (*models.ScheduleGrid, error)
	ListPlans(ctx context.Context) ([]models.Plan, error)
	GetPlan(ctx context.Context, planID string) (*models.Plan, error)
	ListDiscountPeriods(ctx context.Context) ([]models.DiscountPeriod, error)
	ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	GetSection(ctx context.Context, sectionID string) (*models.Section, error)
	GetOpenDates(ctx context.Context, sectionID string) ([]string, error)
}

// DefaultCatalogService implements CatalogService on the Mongo catalog
// repository with a small Redis read cache for section calendars.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}
