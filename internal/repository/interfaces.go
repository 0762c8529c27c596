package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blog-article-service/internal/domain"
)

// DBTX is the subset of *pgxpool.Pool the repositories use. It lets unit
// tests swap in a pgxmock pool.
type DBTX interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ArticleEventRepository defines the event store for article aggregates.
type ArticleEventRepository interface {
	// Create persists the CREATE event of a new article and its outbox row.
	Create(ctx context.Context, article *domain.Article) error
	// Append persists the latest event of an existing article and its outbox row.
	Append(ctx context.Context, article *domain.Article) error
	// FindByID rehydrates an article, returning nil when it has no events.
	FindByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error)
	// CheckDuplicate reports whether the author already owns an article
	// whose current title equals title.
	CheckDuplicate(ctx context.Context, authorID domain.AuthorID, title string) (bool, error)
	// Delete removes the article's events and queues the DELETE event.
	Delete(ctx context.Context, deleteEvent domain.Event) error
	// StreamAll replays every stored event ordered by article and version.
	StreamAll(ctx context.Context, callback func(domain.Event) error) error
}

// OutboxRepository defines data access for pending broker deliveries.
type OutboxRepository interface {
	FetchPending(ctx context.Context, topic string, now time.Time, limit int) ([]domain.OutboxRecord, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
	Reschedule(ctx context.Context, id string, attempts int, availableAt time.Time, lastError string) error
	MarkFailed(ctx context.Context, id string, attempts int, lastError string) error
}
