// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdAtelier/atelier-go/internal/application/container"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/cleanup"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/clock"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/email"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/persistence/database"
	"github.com/AdAtelier/atelier-go/internal/presentation/http/server"
	"github.com/AdAtelier/atelier-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	log.Println("Ad Atelier AI server initializing...")

	// Step 1: Structured logging
	logger, err := logging.NewChanneledLogger(logging.DefaultLoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Startup().Info("Channeled logging initialized")

	// Step 2: Performance tracking
	perfTracker := performance.NewTracker(performance.DefaultTrackerConfig())

	// Step 3: Database connection and schema
	logger.Startup().Info("Connecting to database", "driver", config.DBDriver, "path", config.DBPath)
	db, err := database.NewConnectionWithLogger(config.DBDriver, config.DBPath, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.NewTableCreator().CreateSchema(db.DB); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	logger.Startup().Info("Database schema ready")

	// Step 4: Email service (optional - the site runs without it)
	var emailSvc email.Service
	if svc, err := email.NewService(); err != nil {
		logger.Startup().Warn("Email service unavailable", "reason", err.Error())
	} else {
		emailSvc = svc
		logger.Startup().Info("Email service initialized")
	}

	// Step 5: Dependency injection container
	appClock := clock.System{}
	appContainer := container.NewContainer(db, emailSvc, logger, perfTracker, appClock)
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 6: Background workers
	logger.Startup().Info("Starting background workers...")

	cleanupConfig := cleanup.NewConfig()
	cleanupWorker := cleanup.NewWorker(appContainer.CacheManager, appClock, cleanupConfig, logger)
	go cleanupWorker.Start(ctx)

	go appContainer.TrackingService.StartTimeTicker(ctx)
	go appContainer.Broadcaster.Run(ctx)

	logger.Startup().Info("Background workers started",
		"cleanupInterval", cleanupConfig.CleanupInterval,
		"timeTickerInterval", config.TimeTickerInterval,
		"presenceInterval", config.PresenceBroadcastInterval)

	// Step 7: HTTP server
	httpServer := server.New(config.Port, appContainer)
	logger.Startup().Info("HTTP server initialized", "port", config.Port)

	// Step 8: Graceful shutdown wiring
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+config.Port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", config.Port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	// Cancel background tasks
	cancelBackgroundTasks()

	// Stop server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Closing database connection...")
	if err := db.Close(); err != nil {
		logger.Shutdown().Error("Error closing database", "error", err.Error())
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
