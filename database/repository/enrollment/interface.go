package enrollmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"lienzo/config"
	"lienzo/database"
	"lienzo/models"
)

// EnrollmentRepository persists enrollment records keyed by buy order.
type EnrollmentRepository interface {
	Insert(ctx context.Context, enrollment models.Enrollment) error
	GetByBuyOrder(ctx context.Context, buyOrder string) (*models.Enrollment, error)
	UpdateStatus(ctx context.Context, buyOrder, status string) error
	EnsureIndexes() error
}

type mongoEnrollmentRepo struct {
	coll *mongo.Collection
}

// NewMongoEnrollmentRepo constructs a new MongoDB EnrollmentRepository.
func NewMongoEnrollmentRepo() EnrollmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoEnrollmentRepo{
		coll: db.Collection("enrollments"),
	}
}
