package catalogRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"lienzo/config"
	"lienzo/database"
	"lienzo/models"
)

// CatalogRepository is the read side of the wizard: courses with their
// sections, payment plans, discount periods, payment methods and each
// section's open-date calendar.
type CatalogRepository interface {
	GetCourses(ctx context.Context) ([]models.Course, error)
	GetSection(ctx context.Context, sectionID string) (*models.Section, error)
	GetPlans(ctx context.Context) ([]models.Plan, error)
	GetPlan(ctx context.Context, planID string) (*models.Plan, error)
	GetDiscountPeriods(ctx context.Context) ([]models.DiscountPeriod, error)
	GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	GetOpenDates(ctx context.Context, sectionID string) ([]string, error)
	EnsureIndexes() error
}

type mongoCatalogRepo struct {
	courses   *mongo.Collection
	plans     *mongo.Collection
	discounts *mongo.Collection
	methods   *mongo.Collection
	calendars *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCatalogRepo{
		courses:   db.Collection("courses"),
		plans:     db.Collection("payment_plans"),
		discounts: db.Collection("discount_periods"),
		methods:   db.Collection("payment_methods"),
		calendars: db.Collection("section_calendars"),
	}
}
