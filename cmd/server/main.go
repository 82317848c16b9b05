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

	"github.com/frontdesk-suite/service-frontdesk/internal/application"
	"github.com/frontdesk-suite/service-frontdesk/internal/config"
	"github.com/frontdesk-suite/service-frontdesk/internal/database"
	"github.com/frontdesk-suite/service-frontdesk/internal/events"
	"github.com/frontdesk-suite/service-frontdesk/internal/handler"
	"github.com/frontdesk-suite/service-frontdesk/internal/health"
	"github.com/frontdesk-suite/service-frontdesk/internal/logger"
	"github.com/frontdesk-suite/service-frontdesk/internal/middleware"
	"github.com/frontdesk-suite/service-frontdesk/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-frontdesk")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-frontdesk",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.ProviderModel{}, &repository.BookingModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize Kafka producer
	producer := events.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = producer.Close() }()

	// Initialize repositories
	providerRepo := repository.NewGormProviderRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)

	// Initialize application services
	providerService := application.NewProviderService(providerRepo, producer, log)
	bookingService := application.NewBookingService(bookingRepo, providerRepo, producer, log)

	// Initialize HTTP handlers
	providerHandler := handler.NewProviderHandler(providerService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-frontdesk")
	healthHandler.RegisterRoutes(router)

	// Register routes
	providerHandler.RegisterRoutes(&router.RouterGroup)
	bookingHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
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

	log.Info("shutting down service-frontdesk...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-frontdesk stopped")
}
