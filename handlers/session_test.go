package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lienzo/models"
	"lienzo/services/enrollment"
)

// stubSessionService serves canned draft views without Redis.
type stubSessionService struct {
	view *enrollment.DraftView
	err  error
}

func (s *stubSessionService) InitiateDraft(sel []models.SlotSelection) (*enrollment.DraftView, error) {
	return s.view, s.err
}
func (s *stubSessionService) GetDraft(id string) (*enrollment.DraftView, error) {
	return s.view, s.err
}
func (s *stubSessionService) SelectSlots(id string, sel []models.SlotSelection) (*enrollment.DraftView, error) {
	return s.view, s.err
}
func (s *stubSessionService) SelectPlan(id, planID string, months int, start string) (*enrollment.DraftView, error) {
	return s.view, s.err
}
func (s *stubSessionService) OverrideDate(id string, index int, date string) (*enrollment.DraftView, error) {
	return s.view, s.err
}
func (s *stubSessionService) ListReplacementDates(id string, index int) ([]string, error) {
	return []string{"2026-03-30"}, s.err
}
func (s *stubSessionService) SetStudentInfo(id string, info models.StudentInfo) (*enrollment.DraftView, error) {
	return s.view, s.err
}
func (s *stubSessionService) SetPaymentMethod(id string, methodID int) (*enrollment.DraftView, error) {
	return s.view, s.err
}
func (s *stubSessionService) CancelDraft(id string) error { return s.err }

func sessionRouter(svc enrollment.EnrollmentSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSessionHandler(svc, nil)
	r := gin.New()
	r.POST("/api/enrollment/session", h.InitiateDraftHandler)
	r.GET("/api/enrollment/session/:draftID", h.GetDraftHandler)
	r.PUT("/api/enrollment/session/:draftID/dates/:index", h.OverrideDateHandler)
	return r
}

func TestInitiateDraftHandlerCreated(t *testing.T) {
	view := &enrollment.DraftView{
		Draft: &models.EnrollmentDraft{DraftID: "d1"},
		Valid: true,
	}
	r := sessionRouter(&stubSessionService{view: view})

	body, _ := json.Marshal(gin.H{"selections": []models.SlotSelection{{
		SectionID: "sec-1",
		Slot:      models.WeeklySlot{Day: models.Monday, Start: 600, End: 720},
	}}})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/enrollment/session", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Success bool                 `json:"success"`
		Data    enrollment.DraftView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "d1", resp.Data.Draft.DraftID)
}

func TestGetDraftHandlerExpiredSessionIs404(t *testing.T) {
	r := sessionRouter(&stubSessionService{err: enrollment.ErrDraftNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/enrollment/session/gone", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOverrideDateHandlerRejectsBadIndex(t *testing.T) {
	r := sessionRouter(&stubSessionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/enrollment/session/d1/dates/abc",
		bytes.NewReader([]byte(`{"date":"2026-03-30"}`)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOverrideDateHandlerMapsValidationErrors(t *testing.T) {
	r := sessionRouter(&stubSessionService{err: enrollment.ErrWeekdayMismatch})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/enrollment/session/d1/dates/1",
		bytes.NewReader([]byte(`{"date":"2026-03-31"}`)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
