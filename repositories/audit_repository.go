package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/codeauth/models"
)

// AuditRepository handles persistence of authentication attempts
type AuditRepository interface {
	Create(attempt *models.AuthAttempt) error
	ListByProvider(provider string, limit int) ([]models.AuthAttempt, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new attempt. A zero Timestamp is set to now.
func (r *sqliteAuditRepository) Create(attempt *models.AuthAttempt) error {
	if attempt.ID == "" {
		return fmt.Errorf("attempt id is required")
	}
	if attempt.Timestamp.IsZero() {
		attempt.Timestamp = time.Now().UTC()
	}

	query := `
		INSERT INTO auth_attempts (id, timestamp, provider, event, outcome, identity_id, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(
		query,
		attempt.ID,
		attempt.Timestamp,
		attempt.Provider,
		attempt.Event,
		attempt.Outcome,
		attempt.IdentityID,
		attempt.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert auth attempt: %w", err)
	}

	return nil
}

// ListByProvider returns the most recent attempts for provider, newest first.
func (r *sqliteAuditRepository) ListByProvider(provider string, limit int) ([]models.AuthAttempt, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, timestamp, provider, event, outcome, identity_id, duration_ms
		FROM auth_attempts
		WHERE provider = ?
		ORDER BY timestamp DESC, rowid DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, provider, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query auth attempts: %w", err)
	}
	defer rows.Close()

	var attempts []models.AuthAttempt
	for rows.Next() {
		var a models.AuthAttempt
		var durationMs int64
		if err := rows.Scan(&a.ID, &a.Timestamp, &a.Provider, &a.Event, &a.Outcome, &a.IdentityID, &durationMs); err != nil {
			return nil, fmt.Errorf("failed to scan auth attempt: %w", err)
		}
		a.Duration = time.Duration(durationMs) * time.Millisecond
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}
