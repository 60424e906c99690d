// Package billing provides the SQL-based persistence for verified payments.
package billing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/persistence/database"
)

const queryTimeout = 5 * time.Second

// Payment is a verified payment row.
type Payment struct {
	ID             string
	SessionID      string
	OrderID        string
	PaymentID      string
	AccessCodeHash string
	CreatedAt      time.Time
}

// SQLPaymentRepository is the SQL-based implementation of the payment store.
type SQLPaymentRepository struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewSQLPaymentRepository creates a new instance of the repository.
func NewSQLPaymentRepository(db *database.DB, logger *logging.ChanneledLogger) *SQLPaymentRepository {
	return &SQLPaymentRepository{db: db, logger: logger}
}

// Create saves a new verified payment.
func (r *SQLPaymentRepository) Create(ctx context.Context, payment *Payment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
		INSERT INTO payments (id, session_id, order_id, payment_id, access_code_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	start := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.SessionID,
		payment.OrderID,
		payment.PaymentID,
		payment.AccessCodeHash,
		payment.CreatedAt,
	)
	database.CheckAndLogSlowQuery(r.logger, "CREATE_PAYMENT", time.Since(start), payment.SessionID)
	if err != nil {
		return fmt.Errorf("failed to create payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

// FindByPaymentID retrieves a payment by its gateway payment identifier.
// A missing row returns (nil, nil).
func (r *SQLPaymentRepository) FindByPaymentID(ctx context.Context, paymentID string) (*Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
		SELECT id, session_id, order_id, payment_id, access_code_hash, created_at
		FROM payments
		WHERE payment_id = ?`

	var p Payment
	err := r.db.QueryRowContext(ctx, query, paymentID).Scan(
		&p.ID, &p.SessionID, &p.OrderID, &p.PaymentID, &p.AccessCodeHash, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	return &p, nil
}

// FindBySessionID retrieves all payments recorded for a session.
func (r *SQLPaymentRepository) FindBySessionID(ctx context.Context, sessionID string) ([]*Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
		SELECT id, session_id, order_id, payment_id, access_code_hash, created_at
		FROM payments
		WHERE session_id = ?
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.SessionID, &p.OrderID, &p.PaymentID, &p.AccessCodeHash, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}
