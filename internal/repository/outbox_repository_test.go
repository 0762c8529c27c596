package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/repository"
)

var outboxColumns = []string{"id", "context", "topic", "payload", "status", "attempts",
	"available_at", "last_error", "sent_at", "created_at", "updated_at"}

func TestPostgresOutboxRepository_FetchPending(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("returns pending records", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := repository.NewPostgresOutboxRepository(mock)

		rows := pgxmock.NewRows(outboxColumns).
			AddRow("id-1", domain.OutboxContextCreate, "article-events", []byte(`{"type":"CREATE"}`), "PENDING", 0,
				now, nil, nil, now, now).
			AddRow("id-2", domain.OutboxContextDelete, "article-events", nil, "PENDING", 2,
				now, nil, nil, now, now)
		mock.ExpectQuery("FROM outbox_events").
			WithArgs("article-events", now, 10).
			WillReturnRows(rows)

		records, err := repo.FetchPending(ctx, "article-events", now, 10)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "id-1", records[0].ID)
		assert.Equal(t, domain.OutboxStatusPending, records[0].Status)
		assert.NotEmpty(t, records[0].Payload)
		assert.Empty(t, records[1].Payload)
		assert.Equal(t, 2, records[1].Attempts)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps query error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := repository.NewPostgresOutboxRepository(mock)

		mock.ExpectQuery("FROM outbox_events").WillReturnError(errors.New("connection reset"))

		_, err = repo.FetchPending(ctx, "article-events", now, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "query pending outbox events")
	})
}

func TestPostgresOutboxRepository_Updates(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewPostgresOutboxRepository(mock)

	mock.ExpectExec("SET status = 'SENT'").WithArgs("id-1", now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("SET status = 'PENDING'").WithArgs("id-2", 1, now, "broker down").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("SET status = 'FAILED'").WithArgs("id-3", 5, "payload is empty").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.MarkSent(ctx, "id-1", now))
	require.NoError(t, repo.Reschedule(ctx, "id-2", 1, now, "broker down"))
	require.NoError(t, repo.MarkFailed(ctx, "id-3", 5, "payload is empty"))
	require.NoError(t, mock.ExpectationsWereMet())
}
