// Package cleanup provides the background session eviction worker.
package cleanup

import (
	"context"
	"time"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/interfaces"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/clock"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
)

// Worker handles background cache cleanup operations.
type Worker struct {
	cache  interfaces.SessionCache
	clock  clock.Clock
	config *Config
	logger *logging.ChanneledLogger
}

// NewWorker creates a new cleanup worker with injected configuration.
func NewWorker(cache interfaces.SessionCache, clk clock.Clock, config *Config, logger *logging.ChanneledLogger) *Worker {
	return &Worker{
		cache:  cache,
		clock:  clk,
		config: config,
		logger: logger,
	}
}

// Start begins the cleanup worker routine, using the configured interval.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.config.CleanupInterval)
	defer ticker.Stop()

	w.logger.Cache().Info("Session cleanup worker started",
		"interval", w.config.CleanupInterval, "sessionTTL", w.config.SessionTTL)

	for {
		select {
		case <-ctx.Done():
			w.logger.Cache().Info("Session cleanup worker stopping")
			return
		case <-ticker.C:
			w.performCleanup()
		}
	}
}

func (w *Worker) performCleanup() {
	start := time.Now()
	purged := w.cache.PurgeStale(w.clock.Now(), w.config.SessionTTL)
	if purged > 0 {
		w.logger.Cache().Info("Session cleanup finished",
			"purged", purged, "remaining", w.cache.SessionCount(), "duration", time.Since(start))
	}
}
