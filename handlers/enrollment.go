package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lienzo/models"
	"lienzo/services/enrollment"
	"lienzo/utils"
)

// EnrollmentHandler serves enrollment submission and the payment callback.
type EnrollmentHandler struct {
	Service enrollment.EnrollmentService
	logger  *zap.Logger
}

// NewEnrollmentHandler constructs an EnrollmentHandler.
func NewEnrollmentHandler(service enrollment.EnrollmentService, logger *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{Service: service, logger: logger}
}

// CreateEnrollmentHandler accepts a fully assembled enrollment payload and
// submits it. The response carries a transbank_payment with the redirect URL
// when the method is gateway-backed.
func (h *EnrollmentHandler) CreateEnrollmentHandler(c *gin.Context) {
	var input struct {
		Enrollment models.EnrollmentPayload `json:"enrollment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Submit(c.Request.Context(), input.Enrollment)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to create enrollment", err.Error())
		return
	}
	JSONData(c, http.StatusCreated, result)
}

// TransbankCallbackHandler confirms a payment after the gateway redirects
// the student back with a token.
func (h *EnrollmentHandler) TransbankCallbackHandler(c *gin.Context) {
	var input struct {
		TokenWS string `json:"token_ws"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.TokenWS == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing token_ws", "")
		return
	}

	result, err := h.Service.ConfirmPayment(c.Request.Context(), input.TokenWS)
	if err != nil {
		h.logger.Error("payment confirmation failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "payment confirmation failed", err.Error())
		return
	}
	JSONData(c, http.StatusOK, result)
}
