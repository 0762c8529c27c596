package repository

import (
	"context"
	"fmt"
	"time"

	"blog-article-service/internal/domain"
)

// PostgresOutboxRepository implements OutboxRepository using PostgreSQL.
type PostgresOutboxRepository struct {
	db DBTX
}

// NewPostgresOutboxRepository creates a new PostgresOutboxRepository.
func NewPostgresOutboxRepository(db DBTX) *PostgresOutboxRepository {
	return &PostgresOutboxRepository{db: db}
}

// FetchPending returns up to limit PENDING records for topic that are due
// at now, oldest first.
func (r *PostgresOutboxRepository) FetchPending(ctx context.Context, topic string, now time.Time, limit int) ([]domain.OutboxRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id::text, context, topic, payload, status, attempts, available_at, last_error, sent_at, created_at, updated_at
		FROM outbox_events
		WHERE status = 'PENDING' AND topic = $1 AND available_at <= $2
		ORDER BY created_at ASC
		LIMIT $3
	`, topic, now, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending outbox events: %w", err)
	}
	defer rows.Close()

	records := make([]domain.OutboxRecord, 0, limit)
	for rows.Next() {
		var rec domain.OutboxRecord
		var status string
		if err := rows.Scan(&rec.ID, &rec.Context, &rec.Topic, &rec.Payload, &status, &rec.Attempts,
			&rec.AvailableAt, &rec.LastError, &rec.SentAt, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		rec.Status = domain.OutboxStatus(status)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read outbox events: %w", err)
	}

	return records, nil
}

// MarkSent marks a record as delivered.
func (r *PostgresOutboxRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE outbox_events
		SET status = 'SENT', sent_at = $2, last_error = NULL, updated_at = NOW()
		WHERE id = $1
	`, id, sentAt)
	if err != nil {
		return fmt.Errorf("mark outbox event sent: %w", err)
	}
	return nil
}

// Reschedule keeps a record PENDING and pushes it to availableAt.
func (r *PostgresOutboxRepository) Reschedule(ctx context.Context, id string, attempts int, availableAt time.Time, lastError string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE outbox_events
		SET status = 'PENDING', attempts = $2, available_at = $3, last_error = $4, updated_at = NOW()
		WHERE id = $1
	`, id, attempts, availableAt, lastError)
	if err != nil {
		return fmt.Errorf("reschedule outbox event: %w", err)
	}
	return nil
}

// MarkFailed moves a record to the terminal FAILED state.
func (r *PostgresOutboxRepository) MarkFailed(ctx context.Context, id string, attempts int, lastError string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE outbox_events
		SET status = 'FAILED', attempts = $2, last_error = $3, updated_at = NOW()
		WHERE id = $1
	`, id, attempts, lastError)
	if err != nil {
		return fmt.Errorf("mark outbox event failed: %w", err)
	}
	return nil
}
