// Package visitor provides the SQL-based persistence for visitor
// profile snapshots.
package visitor

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AdAtelier/atelier-go/internal/domain/entities/visitor"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/persistence/database"
)

const queryTimeout = 5 * time.Second

// SQLProfileRepository is the SQL-based implementation of the profile store.
type SQLProfileRepository struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewSQLProfileRepository creates a new instance of the repository.
func NewSQLProfileRepository(db *database.DB, logger *logging.ChanneledLogger) *SQLProfileRepository {
	return &SQLProfileRepository{db: db, logger: logger}
}

// Save upserts the profile snapshot for a session.
func (r *SQLProfileRepository) Save(ctx context.Context, sessionID string, profile *visitor.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile for session %s: %w", sessionID, err)
	}

	const query = `
		INSERT INTO visitor_profiles (session_id, payload, last_activity, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			payload = excluded.payload,
			last_activity = excluded.last_activity,
			updated_at = excluded.updated_at`

	start := time.Now()
	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx, query, sessionID, string(payload), profile.Behavior.LastActivity, now)
	database.CheckAndLogSlowQuery(r.logger, "SAVE_VISITOR_PROFILE", time.Since(start), sessionID)
	if err != nil {
		return fmt.Errorf("failed to save profile for session %s: %w", sessionID, err)
	}
	return nil
}

// FindBySessionID retrieves the stored profile snapshot for a session.
// A missing row returns (nil, nil).
func (r *SQLProfileRepository) FindBySessionID(ctx context.Context, sessionID string) (*visitor.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
		SELECT payload
		FROM visitor_profiles
		WHERE session_id = ?`

	start := time.Now()
	var payload string
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&payload)
	database.CheckAndLogSlowQuery(r.logger, "FIND_VISITOR_PROFILE", time.Since(start), sessionID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for session %s: %w", sessionID, err)
	}

	var profile visitor.Profile
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile for session %s: %w", sessionID, err)
	}
	return &profile, nil
}

// Delete removes the stored snapshot for a session.
func (r *SQLProfileRepository) Delete(ctx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM visitor_profiles WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete profile for session %s: %w", sessionID, err)
	}
	return nil
}

// PurgeOlderThan removes snapshots whose last activity predates the cutoff.
func (r *SQLProfileRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `DELETE FROM visitor_profiles WHERE last_activity < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge stale profiles: %w", err)
	}
	return result.RowsAffected()
}
