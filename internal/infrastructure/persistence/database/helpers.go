// Package database provides database helper functions
package database

import (
	"time"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/pkg/config"
)

// GetSlowQueryThreshold returns the configured slow query threshold.
func GetSlowQueryThreshold() time.Duration {
	return config.SlowQueryThreshold
}

// CheckAndLogSlowQuery checks if a query duration exceeds the threshold
// and logs it on the database channel if it does.
func CheckAndLogSlowQuery(logger *logging.ChanneledLogger, query string, duration time.Duration, sessionID string) {
	if duration > GetSlowQueryThreshold() {
		logger.LogSlowQuery(query, duration, sessionID)
	}
}
