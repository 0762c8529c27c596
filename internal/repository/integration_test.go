package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/repository"
)

func TestArticleEventStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	ctx := context.Background()
	store := repository.NewPostgresArticleEventRepository(testDB.Pool, "article-events")
	outbox := repository.NewPostgresOutboxRepository(testDB.Pool)

	t.Run("create, update, find and delete", func(t *testing.T) {
		testDB.TruncateTables(t, "article_events", "outbox_events")

		article := domain.CreateArticle(domain.NewArticleID(), domain.NewAuthorID(),
			domain.MustTitle("Integration"), domain.MustContent("Body"))
		require.NoError(t, store.Create(ctx, article))

		require.True(t, article.ChangeTitle(domain.MustTitle("Integration 2")))
		require.NoError(t, store.Append(ctx, article))

		loaded, err := store.FindByID(ctx, article.ID())
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, 2, loaded.Version())
		assert.Equal(t, "Integration 2", loaded.CurrentTitle().String())

		dup, err := store.CheckDuplicate(ctx, article.AuthorID(), "Integration 2")
		require.NoError(t, err)
		assert.True(t, dup)

		require.NoError(t, store.Delete(ctx, loaded.NewDeleteEvent()))

		gone, err := store.FindByID(ctx, article.ID())
		require.NoError(t, err)
		assert.Nil(t, gone)

		pending, err := outbox.FetchPending(ctx, "article-events", time.Now().UTC().Add(time.Second), 10)
		require.NoError(t, err)
		require.Len(t, pending, 3)
		assert.Equal(t, domain.OutboxContextCreate, pending[0].Context)
		assert.Equal(t, domain.OutboxContextUpdate, pending[1].Context)
		assert.Equal(t, domain.OutboxContextDelete, pending[2].Context)
	})

	t.Run("concurrent append of the same version conflicts", func(t *testing.T) {
		testDB.TruncateTables(t, "article_events", "outbox_events")

		article := domain.CreateArticle(domain.NewArticleID(), domain.NewAuthorID(),
			domain.MustTitle("Race"), domain.MustContent("Body"))
		require.NoError(t, store.Create(ctx, article))

		first, err := store.FindByID(ctx, article.ID())
		require.NoError(t, err)
		second, err := store.FindByID(ctx, article.ID())
		require.NoError(t, err)

		require.NoError(t, first.Publish())
		require.NoError(t, store.Append(ctx, first))

		second.Archive()
		err = store.Append(ctx, second)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("outbox state transitions", func(t *testing.T) {
		testDB.TruncateTables(t, "article_events", "outbox_events")

		article := domain.CreateArticle(domain.NewArticleID(), domain.NewAuthorID(),
			domain.MustTitle("Outbox"), domain.MustContent("Body"))
		require.NoError(t, store.Create(ctx, article))

		now := time.Now().UTC().Add(time.Second)
		pending, err := outbox.FetchPending(ctx, "article-events", now, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		require.NoError(t, outbox.Reschedule(ctx, pending[0].ID, 1, now.Add(time.Hour), "broker down"))
		later, err := outbox.FetchPending(ctx, "article-events", now, 10)
		require.NoError(t, err)
		assert.Empty(t, later, "rescheduled row must not be due yet")

		require.NoError(t, outbox.MarkSent(ctx, pending[0].ID, now))
		sent, err := outbox.FetchPending(ctx, "article-events", now.Add(2*time.Hour), 10)
		require.NoError(t, err)
		assert.Empty(t, sent)
	})
}
