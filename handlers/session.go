package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lienzo/models"
	"lienzo/services/enrollment"
	"lienzo/utils"
)

// SessionHandler serves the stateful wizard draft endpoints.
type SessionHandler struct {
	Sessions   enrollment.EnrollmentSessionService
	Enrollment enrollment.EnrollmentService
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(sessions enrollment.EnrollmentSessionService, svc enrollment.EnrollmentService) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Enrollment: svc}
}

// InitiateDraftHandler starts a wizard session from the chosen weekly slots.
func (h *SessionHandler) InitiateDraftHandler(c *gin.Context) {
	var input struct {
		Selections []models.SlotSelection `json:"selections"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Sessions.InitiateDraft(input.Selections)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to start enrollment draft", err.Error())
		return
	}
	JSONData(c, http.StatusCreated, view)
}

// GetDraftHandler returns a live draft, for resume-after-reload.
func (h *SessionHandler) GetDraftHandler(c *gin.Context) {
	view, err := h.Sessions.GetDraft(c.Param("draftID"))
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to load enrollment draft", err.Error())
		return
	}
	JSONData(c, http.StatusOK, view)
}

// SelectSlotsHandler replaces the draft's schedule selection.
func (h *SessionHandler) SelectSlotsHandler(c *gin.Context) {
	var input struct {
		Selections []models.SlotSelection `json:"selections"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Sessions.SelectSlots(c.Param("draftID"), input.Selections)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to update schedule selection", err.Error())
		return
	}
	JSONData(c, http.StatusOK, view)
}

// SelectPlanHandler sets the plan, duration and start date, regenerating the
// class-date list.
func (h *SessionHandler) SelectPlanHandler(c *gin.Context) {
	var input struct {
		PaymentPlanID  string `json:"payment_plan_id"`
		DurationMonths int    `json:"duration_months"`
		StartDate      string `json:"start_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Sessions.SelectPlan(c.Param("draftID"), input.PaymentPlanID, input.DurationMonths, input.StartDate)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to select plan", err.Error())
		return
	}
	JSONData(c, http.StatusOK, view)
}

// OverrideDateHandler swaps one class date for another available date on the
// same weekday.
func (h *SessionHandler) OverrideDateHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid class date index", c.Param("index"))
		return
	}
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Sessions.OverrideDate(c.Param("draftID"), index, input.Date)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to edit class date", err.Error())
		return
	}
	JSONData(c, http.StatusOK, view)
}

// ListReplacementDatesHandler returns the dates one entry may be edited to.
func (h *SessionHandler) ListReplacementDatesHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid class date index", c.Param("index"))
		return
	}

	dates, err := h.Sessions.ListReplacementDates(c.Param("draftID"), index)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to list replacement dates", err.Error())
		return
	}
	JSONData(c, http.StatusOK, gin.H{"dates": toDateEntries(dates)})
}

// SetStudentInfoHandler records the personal data step.
func (h *SessionHandler) SetStudentInfoHandler(c *gin.Context) {
	var input models.StudentInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Sessions.SetStudentInfo(c.Param("draftID"), input)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to save student info", err.Error())
		return
	}
	JSONData(c, http.StatusOK, view)
}

// SetPaymentMethodHandler records the chosen payment method.
func (h *SessionHandler) SetPaymentMethodHandler(c *gin.Context) {
	var input struct {
		PaymentMethodID int `json:"payment_method_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Sessions.SetPaymentMethod(c.Param("draftID"), input.PaymentMethodID)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to set payment method", err.Error())
		return
	}
	JSONData(c, http.StatusOK, view)
}

// ConfirmDraftHandler assembles and submits the draft. Progression is blocked
// while the date list holds duplicates or any step is incomplete.
func (h *SessionHandler) ConfirmDraftHandler(c *gin.Context) {
	result, err := h.Enrollment.ConfirmDraft(c.Param("draftID"))
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to confirm enrollment", err.Error())
		return
	}
	JSONData(c, http.StatusCreated, result)
}

// CancelDraftHandler discards a wizard session.
func (h *SessionHandler) CancelDraftHandler(c *gin.Context) {
	if err := h.Sessions.CancelDraft(c.Param("draftID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel enrollment draft", err.Error())
		return
	}
	JSONData(c, http.StatusOK, gin.H{"cancelled": true})
}
