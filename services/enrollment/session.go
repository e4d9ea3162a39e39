// File: services/enrollment/session.go
package enrollment

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lienzo/models"
	"lienzo/services/schedule"
	"lienzo/utils"
)

// InitiateDraft creates a new enrollment draft for the chosen slots, assigns
// it a unique DraftID, and stores it in Redis under the draft TTL.
func (s *DefaultEnrollmentSessionService) InitiateDraft(selections []models.SlotSelection) (*DraftView, error) {
	draft := &models.EnrollmentDraft{DraftID: uuid.New().String()}
	if err := ApplySlotSelection(draft, selections); err != nil {
		return nil, err
	}
	if err := s.saveDraft(draft); err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

// GetDraft returns the live session for a draft id, for resume-after-reload.
func (s *DefaultEnrollmentSessionService) GetDraft(draftID string) (*DraftView, error) {
	draft, err := s.loadDraft(draftID)
	if err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

// SelectSlots replaces the draft's schedule selection.
func (s *DefaultEnrollmentSessionService) SelectSlots(draftID string, selections []models.SlotSelection) (*DraftView, error) {
	return s.transition(draftID, func(draft *models.EnrollmentDraft) error {
		return ApplySlotSelection(draft, selections)
	})
}

// SelectPlan sets plan, duration and start date and regenerates class dates.
// The open-date calendars of every selected section are fetched before the
// transition runs.
func (s *DefaultEnrollmentSessionService) SelectPlan(draftID, planID string, durationMonths int, startDate string) (*DraftView, error) {
	ctx, cancel := context.WithTimeout(context.Background(), utils.FetchTimeout)
	defer cancel()

	plan, err := s.Catalog.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	return s.transition(draftID, func(draft *models.EnrollmentDraft) error {
		open, err := s.fetchOpenDates(draft.SectionIDs())
		if err != nil {
			return err
		}
		return ApplyPlanSelection(draft, *plan, durationMonths, startDate, open)
	})
}

// OverrideDate swaps one generated class date for another available date on
// the same weekday.
func (s *DefaultEnrollmentSessionService) OverrideDate(draftID string, index int, newDate string) (*DraftView, error) {
	return s.transition(draftID, func(draft *models.EnrollmentDraft) error {
		open, err := s.fetchOpenDates(draft.SectionIDs())
		if err != nil {
			return err
		}
		return ApplyDateOverride(draft, index, newDate, open, time.Now())
	})
}

// ListReplacementDates returns the candidate dates one entry may be edited
// to, per the editing rules: same weekday, not past, section-available, not
// already occupied by the draft.
func (s *DefaultEnrollmentSessionService) ListReplacementDates(draftID string, index int) ([]string, error) {
	draft, err := s.loadDraft(draftID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(draft.Generated) {
		return nil, ErrIndexOutOfRange
	}

	ctx, cancel := context.WithTimeout(context.Background(), utils.FetchTimeout)
	defer cancel()
	openDates, err := s.Catalog.GetOpenDates(ctx, draft.Generated[index].SectionID)
	if err != nil {
		return nil, err
	}
	return ReplacementCandidates(draft, index, openDates, time.Now())
}

// SetStudentInfo records the personal-data step.
func (s *DefaultEnrollmentSessionService) SetStudentInfo(draftID string, info models.StudentInfo) (*DraftView, error) {
	return s.transition(draftID, func(draft *models.EnrollmentDraft) error {
		return ApplyStudentInfo(draft, info)
	})
}

// SetPaymentMethod records the chosen payment method.
func (s *DefaultEnrollmentSessionService) SetPaymentMethod(draftID string, methodID int) (*DraftView, error) {
	return s.transition(draftID, func(draft *models.EnrollmentDraft) error {
		return ApplyPaymentMethod(draft, methodID)
	})
}

// CancelDraft deletes the session, dropping all wizard state.
func (s *DefaultEnrollmentSessionService) CancelDraft(draftID string) error {
	ctx := context.Background()
	cacheClient := utils.GetDraftCacheClient()
	if err := cacheClient.Del(ctx, utils.DraftCachePrefix+draftID).Err(); err != nil {
		return fmt.Errorf("failed to cancel enrollment draft: %w", err)
	}
	return nil
}

// transition loads the draft, applies one step and saves the result.
func (s *DefaultEnrollmentSessionService) transition(draftID string, apply func(*models.EnrollmentDraft) error) (*DraftView, error) {
	draft, err := s.loadDraft(draftID)
	if err != nil {
		return nil, err
	}
	if err := apply(draft); err != nil {
		return nil, err
	}
	if err := s.saveDraft(draft); err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

// fetchOpenDates retrieves the open-date calendar of every section
// concurrently. Results merge into a map keyed by section id, so completions
// cannot clobber one another; the first error wins.
func (s *DefaultEnrollmentSessionService) fetchOpenDates(sectionIDs []string) (map[string]schedule.OpenDateSet, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	open := make(map[string]schedule.OpenDateSet, len(sectionIDs))

	for _, sectionID := range sectionIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), utils.FetchTimeout)
			defer cancel()

			dates, err := s.Catalog.GetOpenDates(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to fetch calendar for section %s: %w", id, err)
				}
				return
			}
			open[id] = schedule.NewOpenDateSet(dates)
		}(sectionID)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return open, nil
}

func (s *DefaultEnrollmentSessionService) view(draft *models.EnrollmentDraft) *DraftView {
	view := &DraftView{
		Draft:      draft,
		ClassDates: draft.EffectiveDates(),
		Conflicts:  Conflicts(draft),
	}
	view.Valid = len(view.Conflicts) == 0
	if draft.Plan != nil {
		ctx, cancel := context.WithTimeout(context.Background(), utils.FetchTimeout)
		defer cancel()
		periods, err := s.Catalog.ListDiscountPeriods(ctx)
		if err != nil {
			// The quote is a display aid; the authoritative price is computed
			// again at submission.
			utils.GetLogger().Warn("failed to fetch discount periods for quote", zap.Error(err))
			periods = nil
		}
		quote := schedule.QuoteForPlan(*draft.Plan, draft.DurationMonths, periods)
		view.Quote = &quote
	}
	return view
}

func (s *DefaultEnrollmentSessionService) saveDraft(draft *models.EnrollmentDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal enrollment draft: %w", err)
	}
	ctx := context.Background()
	cacheClient := utils.GetDraftCacheClient()
	if err := cacheClient.Set(ctx, utils.DraftCachePrefix+draft.DraftID, data, utils.DraftCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store enrollment draft: %w", err)
	}
	return nil
}

func (s *DefaultEnrollmentSessionService) loadDraft(draftID string) (*models.EnrollmentDraft, error) {
	ctx := context.Background()
	cacheClient := utils.GetDraftCacheClient()
	data, err := cacheClient.Get(ctx, utils.DraftCachePrefix+draftID).Result()
	if err != nil {
		return nil, ErrDraftNotFound
	}
	var draft models.EnrollmentDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse enrollment draft: %w", err)
	}
	return &draft, nil
}
