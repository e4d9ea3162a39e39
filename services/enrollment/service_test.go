package enrollment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lienzo/models"
)

// Test doubles.

type mockCatalog struct {
	methods      []models.PaymentMethod
	periods      []models.DiscountPeriod
	calendars    map[string][]string
	calendarErrs map[string]error
}

func (m *mockCatalog) ListCourses(ctx context.Context) ([]models.Course, error) { return nil, nil }
func (m *mockCatalog) BuildScheduleGrid(ctx context.Context) (*models.ScheduleGrid, error) {
	return nil, nil
}
func (m *mockCatalog) ListPlans(ctx context.Context) ([]models.Plan, error)         { return nil, nil }
func (m *mockCatalog) GetPlan(ctx context.Context, id string) (*models.Plan, error) { return nil, nil }
func (m *mockCatalog) ListDiscountPeriods(ctx context.Context) ([]models.DiscountPeriod, error) {
	return m.periods, nil
}
func (m *mockCatalog) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return m.methods, nil
}
func (m *mockCatalog) GetSection(ctx context.Context, id string) (*models.Section, error) {
	return nil, nil
}
func (m *mockCatalog) GetOpenDates(ctx context.Context, id string) ([]string, error) {
	if err := m.calendarErrs[id]; err != nil {
		return nil, err
	}
	return m.calendars[id], nil
}

type mockEnrollmentRepo struct {
	inserted []models.Enrollment
	statuses map[string]string
}

func (m *mockEnrollmentRepo) Insert(ctx context.Context, e models.Enrollment) error {
	m.inserted = append(m.inserted, e)
	return nil
}
func (m *mockEnrollmentRepo) GetByBuyOrder(ctx context.Context, buyOrder string) (*models.Enrollment, error) {
	for i := range m.inserted {
		if m.inserted[i].BuyOrder == buyOrder {
			return &m.inserted[i], nil
		}
	}
	return nil, errors.New("not found")
}
func (m *mockEnrollmentRepo) UpdateStatus(ctx context.Context, buyOrder, status string) error {
	if m.statuses == nil {
		m.statuses = make(map[string]string)
	}
	m.statuses[buyOrder] = status
	return nil
}
func (m *mockEnrollmentRepo) EnsureIndexes() error { return nil }

type mockGateway struct {
	created bool
	commit  *models.TransbankCommitResult
}

func (m *mockGateway) CreateTransaction(ctx context.Context, buyOrder, sessionID string, amount int64) (*models.TransbankPayment, error) {
	m.created = true
	return &models.TransbankPayment{
		Token:   "tok-1",
		URL:     "https://webpay.example/init",
		FullURL: "https://webpay.example/init?token_ws=tok-1",
	}, nil
}
func (m *mockGateway) CommitTransaction(ctx context.Context, tokenWS string) (*models.TransbankCommitResult, error) {
	if m.commit == nil {
		return nil, errors.New("no commit configured")
	}
	return m.commit, nil
}

func webpayMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		{ID: 1, Name: "Webpay Plus"},
		{ID: 2, Name: "Transferencia bancaria"},
	}
}

func validPayload() models.EnrollmentPayload {
	return models.EnrollmentPayload{
		Name: "Ana", Email: "ana@example.com", Phone: "+569",
		SectionIDs:       []string{"sec-1"},
		PaymentPlanID:    "p1",
		PaymentMethodID:  1,
		EnrollmentAmount: 135000,
		TotalTuitionFee:  150000,
		StartDate:        "2026-03-02",
		SectionDates:     map[string][]string{"sec-1": {"2026-03-02", "2026-03-09"}},
	}
}

func TestSubmitGatewayMethodOpensPaymentLeg(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	gw := &mockGateway{}
	svc := &DefaultEnrollmentService{Repo: repo, Catalog: &mockCatalog{methods: webpayMethods()}, Gateway: gw}

	result, err := svc.Submit(context.Background(), validPayload())
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, models.EnrollmentStatusPending, repo.inserted[0].Status)
	assert.True(t, gw.created)
	require.NotNil(t, result.Payment)
	assert.Equal(t, "https://webpay.example/init?token_ws=tok-1", result.Payment.FullURL)
}

func TestSubmitDirectMethodConfirmsImmediately(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	gw := &mockGateway{}
	svc := &DefaultEnrollmentService{Repo: repo, Catalog: &mockCatalog{methods: webpayMethods()}, Gateway: gw}

	payload := validPayload()
	payload.PaymentMethodID = 2

	result, err := svc.Submit(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, models.EnrollmentStatusConfirmed, repo.inserted[0].Status)
	assert.False(t, gw.created)
	assert.Nil(t, result.Payment)
}

func TestSubmitRejectsInvalidPayloadBeforePersisting(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	svc := &DefaultEnrollmentService{Repo: repo, Catalog: &mockCatalog{methods: webpayMethods()}, Gateway: &mockGateway{}}

	payload := validPayload()
	payload.SectionDates = map[string][]string{"sec-1": {"2026-03-02", "2026-03-02"}}

	_, err := svc.Submit(context.Background(), payload)
	assert.ErrorIs(t, err, ErrDuplicateDates)
	assert.Empty(t, repo.inserted)
}

func TestSubmitUnknownPaymentMethod(t *testing.T) {
	svc := &DefaultEnrollmentService{Repo: &mockEnrollmentRepo{}, Catalog: &mockCatalog{methods: webpayMethods()}, Gateway: &mockGateway{}}

	payload := validPayload()
	payload.PaymentMethodID = 99

	_, err := svc.Submit(context.Background(), payload)
	assert.ErrorIs(t, err, ErrMissingPaymentMethod)
}

func TestConfirmPaymentAuthorized(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	gw := &mockGateway{commit: &models.TransbankCommitResult{
		BuyOrder: "ord-1", Status: "AUTHORIZED", ResponseCode: 0, Amount: 135000,
	}}
	svc := &DefaultEnrollmentService{Repo: repo, Catalog: &mockCatalog{}, Gateway: gw}

	result, err := svc.ConfirmPayment(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.True(t, result.Authorized())
	assert.Equal(t, models.EnrollmentStatusPaid, repo.statuses["ord-1"])
}

func TestConfirmPaymentRejected(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	gw := &mockGateway{commit: &models.TransbankCommitResult{
		BuyOrder: "ord-1", Status: "FAILED", ResponseCode: -1,
	}}
	svc := &DefaultEnrollmentService{Repo: repo, Catalog: &mockCatalog{}, Gateway: gw}

	result, err := svc.ConfirmPayment(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.False(t, result.Authorized())
	assert.Equal(t, models.EnrollmentStatusRejected, repo.statuses["ord-1"])
}
