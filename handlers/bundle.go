// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	GetCoursesHandler         gin.HandlerFunc
	GetScheduleGridHandler    gin.HandlerFunc
	GetPaymentPlansHandler    gin.HandlerFunc
	GetDiscountPeriodsHandler gin.HandlerFunc
	GetPaymentMethodsHandler  gin.HandlerFunc

	// Section calendar endpoints
	GetSectionCalendarHandler gin.HandlerFunc
	PreviewClassDatesHandler  gin.HandlerFunc

	// Enrollment endpoints
	CreateEnrollmentHandler  gin.HandlerFunc
	TransbankCallbackHandler gin.HandlerFunc

	// Draft session endpoints
	InitiateDraftHandler        gin.HandlerFunc
	GetDraftHandler             gin.HandlerFunc
	SelectSlotsHandler          gin.HandlerFunc
	SelectPlanHandler           gin.HandlerFunc
	OverrideDateHandler         gin.HandlerFunc
	ListReplacementDatesHandler gin.HandlerFunc
	SetStudentInfoHandler       gin.HandlerFunc
	SetPaymentMethodHandler     gin.HandlerFunc
	ConfirmDraftHandler         gin.HandlerFunc
	CancelDraftHandler          gin.HandlerFunc
}
