// FILE: database/repository/catalog/indexes.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the catalog collections.
func (r *mongoCatalogRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	courseIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Section lookups resolve through the nested section id.
		{
			Keys:    bson.D{{Key: "sections.id", Value: 1}},
			Options: options.Index().SetName("section_id_idx"),
		},
	}
	if _, err := r.courses.Indexes().CreateMany(ctx, courseIndexes); err != nil {
		return fmt.Errorf("failed to create course indexes: %w", err)
	}

	planIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
	}
	if _, err := r.plans.Indexes().CreateMany(ctx, planIndexes); err != nil {
		return fmt.Errorf("failed to create plan indexes: %w", err)
	}

	calendarIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sectionId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_section_id"),
		},
	}
	if _, err := r.calendars.Indexes().CreateMany(ctx, calendarIndexes); err != nil {
		return fmt.Errorf("failed to create calendar indexes: %w", err)
	}
	return nil
}
