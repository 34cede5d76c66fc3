package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yatrika/service-planner/internal/application"
	"github.com/yatrika/service-planner/internal/config"
	"github.com/yatrika/service-planner/internal/domain/trip"
	"github.com/yatrika/service-planner/internal/events"
	"github.com/yatrika/service-planner/internal/handler"
	"github.com/yatrika/service-planner/internal/llm"
	"github.com/yatrika/service-planner/internal/maps"
	"github.com/yatrika/service-planner/internal/middleware"
	"github.com/yatrika/service-planner/internal/pdf"
	"github.com/yatrika/service-planner/internal/render"
	"github.com/yatrika/service-planner/internal/repository"
)

const serviceName = "service-planner"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := newLogger(cfg.AppEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName,
		zap.String("port", cfg.Port),
		zap.String("output_dir", cfg.OutputDir),
	)

	// Trip record persistence
	tripRepo, err := repository.NewFileTripRepository(cfg.OutputDir)
	if err != nil {
		log.Fatal("failed to initialize trip repository", zap.Error(err))
	}

	// Initialize event publisher (disabled when no brokers configured)
	publisher := events.NewPublisher(cfg.KafkaBrokers, serviceName, log)
	defer func() { _ = publisher.Close() }()

	// Initialize Google Maps client
	mapsClient := maps.NewClient(cfg.GoogleAPIKey, cfg.GeocodeRegion, cfg.HTTPTimeout, log)

	// Initialize planner service
	plannerService := application.NewPlannerService(
		mapsClient,
		mapsClient,
		trip.NewFlatRateFareStrategy(),
		render.NewMapRenderer(),
		tripRepo,
		publisher,
		cfg.OutputDir,
		log,
	)

	// Initialize text generator for guide generation
	var generator application.TextGenerator
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, log)
		if err != nil {
			log.Fatal("failed to create gemini client", zap.Error(err))
		}
		generator = geminiClient
	} else {
		log.Warn("GEMINI_API_KEY not set, guide generation disabled")
		generator = llm.Disabled{}
	}

	// Initialize guide service
	guideService, err := application.NewGuideService(
		tripRepo,
		generator,
		pdf.NewWriter(),
		publisher,
		cfg.GuideDir,
		log,
	)
	if err != nil {
		log.Fatal("failed to initialize guide service", zap.Error(err))
	}

	// Initialize HTTP handlers
	tripHandler := handler.NewTripHandler(plannerService, cfg.OutputDir)
	guideHandler := handler.NewGuideHandler(guideService)
	healthHandler := handler.NewHealthHandler(serviceName)

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// Register routes
	healthHandler.RegisterRoutes(router)
	tripHandler.RegisterRoutes(&router.RouterGroup)
	guideHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}

// newLogger builds a production logger, or a development logger for the
// development environment.
func newLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
