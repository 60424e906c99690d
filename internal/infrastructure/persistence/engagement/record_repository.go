// Package engagement provides the SQL-based persistence for visitor
// engagement records (streaks and achievements).
package engagement

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AdAtelier/atelier-go/internal/domain/entities/engagement"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/persistence/database"
)

const queryTimeout = 5 * time.Second

// SQLRecordRepository is the SQL-based implementation of the engagement store.
type SQLRecordRepository struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewSQLRecordRepository creates a new instance of the repository.
func NewSQLRecordRepository(db *database.DB, logger *logging.ChanneledLogger) *SQLRecordRepository {
	return &SQLRecordRepository{db: db, logger: logger}
}

// Save upserts the engagement record for a visitor.
func (r *SQLRecordRepository) Save(ctx context.Context, record *engagement.Record) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal engagement record for visitor %s: %w", record.VisitorID, err)
	}

	const query = `
		INSERT INTO engagement_records (visitor_id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(visitor_id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`

	start := time.Now()
	_, err = r.db.ExecContext(ctx, query, record.VisitorID, string(payload), time.Now().UTC())
	database.CheckAndLogSlowQuery(r.logger, "SAVE_ENGAGEMENT_RECORD", time.Since(start), record.VisitorID)
	if err != nil {
		return fmt.Errorf("failed to save engagement record for visitor %s: %w", record.VisitorID, err)
	}
	return nil
}

// FindByVisitorID retrieves the engagement record for a visitor.
// A missing row returns (nil, nil).
func (r *SQLRecordRepository) FindByVisitorID(ctx context.Context, visitorID string) (*engagement.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
		SELECT payload
		FROM engagement_records
		WHERE visitor_id = ?`

	var payload string
	err := r.db.QueryRowContext(ctx, query, visitorID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load engagement record for visitor %s: %w", visitorID, err)
	}

	var record engagement.Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal engagement record for visitor %s: %w", visitorID, err)
	}
	return &record, nil
}
