// File: database/repository/enrollment/enrollment_mongo.go
package enrollmentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lienzo/models"
)

func (r *mongoEnrollmentRepo) Insert(ctx context.Context, enrollment models.Enrollment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if enrollment.ID == "" {
		enrollment.ID = uuid.New().String()
	}
	now := time.Now()
	if enrollment.CreatedAt.IsZero() {
		enrollment.CreatedAt = now
	}
	enrollment.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, enrollment)
	return err
}

func (r *mongoEnrollmentRepo) GetByBuyOrder(ctx context.Context, buyOrder string) (*models.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var enrollment models.Enrollment
	if err := r.coll.FindOne(ctx, bson.M{"buyOrder": buyOrder}).Decode(&enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *mongoEnrollmentRepo) UpdateStatus(ctx context.Context, buyOrder, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"buyOrder": buyOrder}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the enrollments collection.
func (r *mongoEnrollmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "buyOrder", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_buy_order"),
		},
		{
			Keys:    bson.D{{Key: "payload.email", Value: 1}},
			Options: options.Index().SetName("email_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create enrollment indexes: %w", err)
	}
	return nil
}
