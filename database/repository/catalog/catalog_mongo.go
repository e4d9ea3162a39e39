// File: database/repository/catalog/catalog_mongo.go
package catalogRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lienzo/models"
)

func (r *mongoCatalogRepo) GetCourses(ctx context.Context) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.courses.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *mongoCatalogRepo) GetSection(ctx context.Context, sectionID string) (*models.Section, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Sections live nested in their course document.
	filter := bson.M{"sections.id": sectionID}
	var course models.Course
	if err := r.courses.FindOne(ctx, filter).Decode(&course); err != nil {
		return nil, err
	}
	for _, sec := range course.Sections {
		if sec.ID == sectionID {
			return &sec, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *mongoCatalogRepo) GetPlans(ctx context.Context) ([]models.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.plans.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoCatalogRepo) GetPlan(ctx context.Context, planID string) (*models.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var plan models.Plan
	if err := r.plans.FindOne(ctx, bson.M{"id": planID}).Decode(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mongoCatalogRepo) GetDiscountPeriods(ctx context.Context) ([]models.DiscountPeriod, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.discounts.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var periods []models.DiscountPeriod
	if err := cursor.All(ctx, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *mongoCatalogRepo) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.methods.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var methods []models.PaymentMethod
	if err := cursor.All(ctx, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

// sectionCalendar is the stored shape of a section's open-date list.
type sectionCalendar struct {
	SectionID string   `bson:"sectionId"`
	Dates     []string `bson:"dates"`
}

func (r *mongoCatalogRepo) GetOpenDates(ctx context.Context, sectionID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cal sectionCalendar
	if err := r.calendars.FindOne(ctx, bson.M{"sectionId": sectionID}).Decode(&cal); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return cal.Dates, nil
}
