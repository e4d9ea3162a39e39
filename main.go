// File: lienzo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"lienzo/config"
	"lienzo/database"
	catalogRepoPkg "lienzo/database/repository/catalog"
	enrollmentRepoPkg "lienzo/database/repository/enrollment"
	"lienzo/handlers"
	"lienzo/middleware"
	"lienzo/routes"
	"lienzo/services/catalog"
	"lienzo/services/enrollment"
	"lienzo/services/payment"
	"lienzo/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitDraftCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	enrollmentRepo := enrollmentRepoPkg.NewMongoEnrollmentRepo()
	if err := catalogRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure catalog indexes: %v", err)
	}
	if err := enrollmentRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure enrollment indexes: %v", err)
	}

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}

	gateway := payment.NewTransbankClientFromConfig(logger)

	sessionService := &enrollment.DefaultEnrollmentSessionService{
		Catalog: catalogService,
	}

	enrollmentService := &enrollment.DefaultEnrollmentService{
		Repo:     enrollmentRepo,
		Catalog:  catalogService,
		Gateway:  gateway,
		Sessions: sessionService,
	}

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService, logger)
	sessionHandler := handlers.NewSessionHandler(sessionService, enrollmentService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		GetCoursesHandler:         catalogHandler.GetCoursesHandler,
		GetScheduleGridHandler:    catalogHandler.GetScheduleGridHandler,
		GetPaymentPlansHandler:    catalogHandler.GetPaymentPlansHandler,
		GetDiscountPeriodsHandler: catalogHandler.GetDiscountPeriodsHandler,
		GetPaymentMethodsHandler:  catalogHandler.GetPaymentMethodsHandler,

		// Section calendar endpoints.
		GetSectionCalendarHandler: catalogHandler.GetSectionCalendarHandler,
		PreviewClassDatesHandler:  catalogHandler.PreviewClassDatesHandler,

		// Enrollment endpoints.
		CreateEnrollmentHandler:  enrollmentHandler.CreateEnrollmentHandler,
		TransbankCallbackHandler: enrollmentHandler.TransbankCallbackHandler,

		// Draft session endpoints.
		InitiateDraftHandler:        sessionHandler.InitiateDraftHandler,
		GetDraftHandler:             sessionHandler.GetDraftHandler,
		SelectSlotsHandler:          sessionHandler.SelectSlotsHandler,
		SelectPlanHandler:           sessionHandler.SelectPlanHandler,
		OverrideDateHandler:         sessionHandler.OverrideDateHandler,
		ListReplacementDatesHandler: sessionHandler.ListReplacementDatesHandler,
		SetStudentInfoHandler:       sessionHandler.SetStudentInfoHandler,
		SetPaymentMethodHandler:     sessionHandler.SetPaymentMethodHandler,
		ConfirmDraftHandler:         sessionHandler.ConfirmDraftHandler,
		CancelDraftHandler:          sessionHandler.CancelDraftHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
