package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/eventcodec"
)

const uniqueViolation = "23505"

const (
	insertEventSQL = `INSERT INTO article_events (article_id, author_id, event_type, event_data, version, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	insertOutboxSQL = `INSERT INTO outbox_events (id, context, topic, payload, status, attempts, available_at)
		VALUES ($1, $2, $3, $4, 'PENDING', 0, $5)`

	selectEventsByArticleSQL = `SELECT article_id::text, author_id::text, event_type, event_data, version, occurred_at
		FROM article_events
		WHERE article_id = $1
		ORDER BY version ASC`

	selectTitleEventsByAuthorSQL = `SELECT article_id::text, author_id::text, event_type, event_data, version, occurred_at
		FROM article_events
		WHERE author_id = $1 AND event_type IN ('CREATE', 'CHANGE_TITLE')
		ORDER BY article_id ASC, version DESC`

	selectAllEventsSQL = `SELECT article_id::text, author_id::text, event_type, event_data, version, occurred_at
		FROM article_events
		ORDER BY article_id ASC, version ASC`

	deleteEventsByArticleSQL = `DELETE FROM article_events WHERE article_id = $1`
)

// PostgresArticleEventRepository implements ArticleEventRepository using
// PostgreSQL. Every write also inserts an outbox row in the same
// transaction.
type PostgresArticleEventRepository struct {
	db    DBTX
	topic string
}

// NewPostgresArticleEventRepository creates a new PostgresArticleEventRepository.
func NewPostgresArticleEventRepository(db DBTX, topic string) *PostgresArticleEventRepository {
	if topic == "" {
		topic = domain.DefaultEventTopic
	}
	return &PostgresArticleEventRepository{db: db, topic: topic}
}

// Create persists the CREATE event of a new article.
func (r *PostgresArticleEventRepository) Create(ctx context.Context, article *domain.Article) error {
	return r.persistLatest(ctx, article, domain.OutboxContextCreate)
}

// Append persists the latest event of an existing article.
func (r *PostgresArticleEventRepository) Append(ctx context.Context, article *domain.Article) error {
	return r.persistLatest(ctx, article, domain.OutboxContextUpdate)
}

func (r *PostgresArticleEventRepository) persistLatest(ctx context.Context, article *domain.Article, outboxContext string) error {
	event, ok := article.LatestEvent()
	if !ok {
		return fmt.Errorf("%w: article has no events", domain.ErrInconsistentStream)
	}

	primitive, err := eventcodec.ToPrimitive(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	payload, err := json.Marshal(primitive)
	if err != nil {
		return fmt.Errorf("encode outbox payload: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, insertEventSQL,
		primitive.ArticleID, primitive.AuthorID, primitive.Type,
		[]byte(primitive.Data), primitive.Version, event.OccurredAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: article %s already has version %d", domain.ErrConflict, primitive.ArticleID, primitive.Version)
		}
		return fmt.Errorf("insert article event: %w", err)
	}

	if err := r.insertOutbox(ctx, tx, outboxContext, payload); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *PostgresArticleEventRepository) insertOutbox(ctx context.Context, tx pgx.Tx, outboxContext string, payload []byte) error {
	_, err := tx.Exec(ctx, insertOutboxSQL, uuid.NewString(), outboxContext, r.topic, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}

// FindByID loads and rehydrates an article. It returns nil, nil when the
// article has no stored events.
func (r *PostgresArticleEventRepository) FindByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	rows, err := r.db.Query(ctx, selectEventsByArticleSQL, id.String())
	if err != nil {
		return nil, fmt.Errorf("query article events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read article events: %w", err)
	}

	if len(events) == 0 {
		return nil, nil
	}

	article, err := domain.Rehydrate(events)
	if err != nil {
		return nil, fmt.Errorf("rehydrate article %s: %w", id, err)
	}
	return article, nil
}

// CheckDuplicate walks the author's title-bearing events newest first per
// article and compares each article's current title with title.
func (r *PostgresArticleEventRepository) CheckDuplicate(ctx context.Context, authorID domain.AuthorID, title string) (bool, error) {
	normalized, err := domain.NewTitle(title)
	if err != nil {
		return false, nil
	}

	rows, err := r.db.Query(ctx, selectTitleEventsByAuthorSQL, authorID.String())
	if err != nil {
		return false, fmt.Errorf("query title events: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var p eventcodec.Primitive
		var occurredAt time.Time
		var data []byte
		if err := rows.Scan(&p.ArticleID, &p.AuthorID, &p.Type, &data, &p.Version, &occurredAt); err != nil {
			return false, fmt.Errorf("scan title event: %w", err)
		}
		if _, ok := seen[p.ArticleID]; ok {
			continue
		}
		p.Data = data
		p.OccurredAt = occurredAt.UTC().Format(time.RFC3339Nano)

		// unreadable rows are skipped rather than failing the check
		event, err := eventcodec.FromPrimitive(p)
		if err != nil {
			continue
		}

		var current domain.Title
		switch payload := event.Payload.(type) {
		case domain.Created:
			current = payload.Title
		case domain.TitleChanged:
			current = payload.NewTitle
		default:
			continue
		}

		seen[p.ArticleID] = struct{}{}
		if current.Equals(normalized) {
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("read title events: %w", err)
	}

	return false, nil
}

// Delete removes every stored event of the article and queues deleteEvent
// for delivery.
func (r *PostgresArticleEventRepository) Delete(ctx context.Context, deleteEvent domain.Event) error {
	if deleteEvent.Type() != domain.EventTypeDelete {
		return fmt.Errorf("%w: expected DELETE event, got %s", domain.ErrValidation, deleteEvent.Type())
	}

	payload, err := eventcodec.Marshal(deleteEvent)
	if err != nil {
		return fmt.Errorf("encode delete event: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, deleteEventsByArticleSQL, deleteEvent.ArticleID.String()); err != nil {
		return fmt.Errorf("delete article events: %w", err)
	}

	if err := r.insertOutbox(ctx, tx, domain.OutboxContextDelete, payload); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// StreamAll streams every stored event ordered by article and version.
func (r *PostgresArticleEventRepository) StreamAll(ctx context.Context, callback func(domain.Event) error) error {
	rows, err := r.db.Query(ctx, selectAllEventsSQL)
	if err != nil {
		return fmt.Errorf("query article events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return err
		}

		if err := callback(event); err != nil {
			return fmt.Errorf("callback error: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate article events: %w", err)
	}
	return nil
}

func scanEvent(rows pgx.Rows) (domain.Event, error) {
	var p eventcodec.Primitive
	var occurredAt time.Time
	var data []byte
	if err := rows.Scan(&p.ArticleID, &p.AuthorID, &p.Type, &data, &p.Version, &occurredAt); err != nil {
		return domain.Event{}, fmt.Errorf("scan article event: %w", err)
	}
	p.Data = data
	p.OccurredAt = occurredAt.UTC().Format(time.RFC3339Nano)

	event, err := eventcodec.FromPrimitive(p)
	if err != nil {
		return domain.Event{}, fmt.Errorf("decode event %s v%d: %w", p.ArticleID, p.Version, err)
	}
	return event, nil
}
