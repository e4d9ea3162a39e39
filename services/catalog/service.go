package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"lienzo/models"
	"lienzo/utils"
)

func (s *DefaultCatalogService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.Repo.GetCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	return courses, nil
}

func (s *DefaultCatalogService) ListPlans(ctx context.Context) ([]models.Plan, error) {
	plans, err := s.Repo.GetPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment plans: %w", err)
	}
	return plans, nil
}

func (s *DefaultCatalogService) GetPlan(ctx context.Context, planID string) (*models.Plan, error) {
	plan, err := s.Repo.GetPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment plan %s: %w", planID, err)
	}
	return plan, nil
}

func (s *DefaultCatalogService) ListDiscountPeriods(ctx context.Context) ([]models.DiscountPeriod, error) {
	periods, err := s.Repo.GetDiscountPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discount periods: %w", err)
	}
	return periods, nil
}

func (s *DefaultCatalogService) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	methods, err := s.Repo.GetPaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment methods: %w", err)
	}
	return methods, nil
}

func (s *DefaultCatalogService) GetSection(ctx context.Context, sectionID string) (*models.Section, error) {
	section, err := s.Repo.GetSection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch section %s: %w", sectionID, err)
	}
	return section, nil
}

// GetOpenDates returns a section's open-date calendar, serving from the Redis
// read cache when possible. Cache failures are logged and ignored; the
// repository remains the source of truth.
func (s *DefaultCatalogService) GetOpenDates(ctx context.Context, sectionID string) ([]string, error) {
	logger := utils.GetLogger()
	cacheClient := utils.GetCacheClient()
	cacheKey := utils.CalendarCachePrefix + sectionID

	if cached, err := cacheClient.Get(ctx, cacheKey).Result(); err == nil {
		var dates []string
		if err := json.Unmarshal([]byte(cached), &dates); err == nil {
			return dates, nil
		}
		logger.Warn("discarding malformed cached calendar", zap.String("sectionId", sectionID))
	}

	dates, err := s.Repo.GetOpenDates(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch open dates for section %s: %w", sectionID, err)
	}

	if data, err := json.Marshal(dates); err == nil {
		if err := cacheClient.Set(ctx, cacheKey, data, utils.CalendarCacheTTL).Err(); err != nil {
			logger.Warn("failed to cache section calendar",
				zap.String("sectionId", sectionID), zap.Error(err))
		}
	}
	return dates, nil
}
