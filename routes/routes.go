package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lienzo/handlers"
)

// RegisterCatalogRoutes registers the wizard's read endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/courses", hb.GetCoursesHandler)
	r.GET("/schedule_grid", hb.GetScheduleGridHandler)
	r.GET("/payment_plans", hb.GetPaymentPlansHandler)
	r.GET("/discount_periods", hb.GetDiscountPeriodsHandler)
	r.GET("/payment_methods", hb.GetPaymentMethodsHandler)

	sections := r.Group("/sections")
	{
		sections.GET("/:id/calendar", hb.GetSectionCalendarHandler)
		sections.GET("/:id/preview_class_dates", hb.PreviewClassDatesHandler)
	}
}

// RegisterEnrollmentRoutes registers submission and the payment callback.
func RegisterEnrollmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/enrollments", hb.CreateEnrollmentHandler)
	r.POST("/transbank/callback", hb.TransbankCallbackHandler)
}

// RegisterDraftRoutes sets up the endpoints for the stateful wizard session.
func RegisterDraftRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	draftGroup := r.Group("/api/enrollment")
	{
		draftGroup.POST("/session", hb.InitiateDraftHandler)
		draftGroup.GET("/session/:draftID", hb.GetDraftHandler)
		draftGroup.PUT("/session/:draftID/slots", hb.SelectSlotsHandler)
		draftGroup.PUT("/session/:draftID/plan", hb.SelectPlanHandler)
		draftGroup.PUT("/session/:draftID/dates/:index", hb.OverrideDateHandler)
		draftGroup.GET("/session/:draftID/dates/:index/options", hb.ListReplacementDatesHandler)
		draftGroup.PUT("/session/:draftID/student", hb.SetStudentInfoHandler)
		draftGroup.PUT("/session/:draftID/payment_method", hb.SetPaymentMethodHandler)
		draftGroup.POST("/session/:draftID/confirm", hb.ConfirmDraftHandler)
		draftGroup.DELETE("/session/:draftID", hb.CancelDraftHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Lienzo"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterEnrollmentRoutes(r, hb)
	RegisterDraftRoutes(r, hb)
}
