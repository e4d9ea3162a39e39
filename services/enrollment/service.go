// File: services/enrollment/service.go
package enrollment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lienzo/models"
	"lienzo/services/schedule"
	"lienzo/utils"
)

// Submit validates and persists an enrollment, then opens the payment leg
// when the chosen method is gateway-backed. The payload is re-validated here
// regardless of origin: malformed data never reaches Transbank.
func (s *DefaultEnrollmentService) Submit(ctx context.Context, payload models.EnrollmentPayload) (*SubmitResult, error) {
	logger := utils.GetLogger()

	if err := ValidatePayload(&payload); err != nil {
		return nil, err
	}

	record := models.Enrollment{
		ID:        uuid.New().String(),
		BuyOrder:  uuid.New().String(),
		Status:    models.EnrollmentStatusPending,
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	gatewayBacked, err := s.isGatewayMethod(ctx, payload.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if !gatewayBacked {
		record.Status = models.EnrollmentStatusConfirmed
	}

	if err := s.Repo.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist enrollment: %w", err)
	}

	result := &SubmitResult{Enrollment: &record}
	if gatewayBacked {
		pay, err := s.Gateway.CreateTransaction(ctx, record.BuyOrder, record.ID, payload.EnrollmentAmount)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment transaction: %w", err)
		}
		result.Payment = pay
	}

	logger.Info("Enrollment submitted",
		zap.String("buyOrder", record.BuyOrder),
		zap.String("status", record.Status),
		zap.Int64("amount", payload.EnrollmentAmount))
	return result, nil
}

// ConfirmDraft assembles a draft session into a payload, submits it, and
// destroys the draft on success.
func (s *DefaultEnrollmentService) ConfirmDraft(draftID string) (*SubmitResult, error) {
	view, err := s.Sessions.GetDraft(draftID)
	if err != nil {
		return nil, err
	}
	draft := view.Draft

	ctx, cancel := context.WithTimeout(context.Background(), utils.FetchTimeout)
	defer cancel()

	periods, err := s.Catalog.ListDiscountPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discount periods: %w", err)
	}
	if draft.Plan == nil {
		return nil, ErrMissingPlan
	}
	quote := schedule.QuoteForPlan(*draft.Plan, draft.DurationMonths, periods)

	payload, err := Assemble(draft, quote)
	if err != nil {
		return nil, err
	}

	result, err := s.Submit(ctx, *payload)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.CancelDraft(draftID); err != nil {
		// The enrollment is already persisted; a stale draft simply expires.
		utils.GetLogger().Warn("failed to delete draft after submit",
			zap.String("draftId", draftID), zap.Error(err))
	}
	return result, nil
}

// ConfirmPayment commits a gateway transaction after the redirect-back leg
// and records the outcome on the enrollment.
func (s *DefaultEnrollmentService) ConfirmPayment(ctx context.Context, tokenWS string) (*models.TransbankCommitResult, error) {
	result, err := s.Gateway.CommitTransaction(ctx, tokenWS)
	if err != nil {
		return nil, err
	}

	status := models.EnrollmentStatusRejected
	if result.Authorized() {
		status = models.EnrollmentStatusPaid
	}
	if err := s.Repo.UpdateStatus(ctx, result.BuyOrder, status); err != nil {
		return nil, fmt.Errorf("failed to update enrollment %s: %w", result.BuyOrder, err)
	}

	utils.GetLogger().Info("Payment confirmed",
		zap.String("buyOrder", result.BuyOrder), zap.String("status", status))
	return result, nil
}

// isGatewayMethod reports whether the payment method requires the Webpay
// redirect flow.
func (s *DefaultEnrollmentService) isGatewayMethod(ctx context.Context, methodID int) (bool, error) {
	methods, err := s.Catalog.ListPaymentMethods(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to fetch payment methods: %w", err)
	}
	for _, m := range methods {
		if m.ID != methodID {
			continue
		}
		name := strings.ToLower(m.Name)
		return strings.Contains(name, "webpay") || strings.Contains(name, "transbank"), nil
	}
	return false, ErrMissingPaymentMethod
}
