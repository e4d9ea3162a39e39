package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lienzo/services/catalog"
	"lienzo/utils"
)

// CatalogHandler serves the read side of the wizard.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(service catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: service}
}

// GetCoursesHandler returns the course list with nested sections.
func (h *CatalogHandler) GetCoursesHandler(c *gin.Context) {
	courses, err := h.Service.ListCourses(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch courses", err.Error())
		return
	}
	JSONData(c, http.StatusOK, courses)
}

// GetScheduleGridHandler returns the catalog normalized into the day × time
// grid the schedule picker renders.
func (h *CatalogHandler) GetScheduleGridHandler(c *gin.Context) {
	grid, err := h.Service.BuildScheduleGrid(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build schedule grid", err.Error())
		return
	}
	JSONData(c, http.StatusOK, grid)
}

// GetPaymentPlansHandler returns the payment plan list.
func (h *CatalogHandler) GetPaymentPlansHandler(c *gin.Context) {
	plans, err := h.Service.ListPlans(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch payment plans", err.Error())
		return
	}
	JSONData(c, http.StatusOK, plans)
}

// GetDiscountPeriodsHandler returns the duration → discount lookup table.
func (h *CatalogHandler) GetDiscountPeriodsHandler(c *gin.Context) {
	periods, err := h.Service.ListDiscountPeriods(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch discount periods", err.Error())
		return
	}
	JSONData(c, http.StatusOK, periods)
}

// GetPaymentMethodsHandler returns the payment methods offered at checkout.
func (h *CatalogHandler) GetPaymentMethodsHandler(c *gin.Context) {
	methods, err := h.Service.ListPaymentMethods(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch payment methods", err.Error())
		return
	}
	JSONData(c, http.StatusOK, methods)
}
