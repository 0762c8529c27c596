package readmodel_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/readmodel"
)

func loadArticle(t *testing.T, client *redis.Client, id string) readmodel.Article {
	t.Helper()
	raw, err := client.Get(context.Background(), readmodel.ArticleKey(id)).Result()
	require.NoError(t, err)
	var article readmodel.Article
	require.NoError(t, json.Unmarshal([]byte(raw), &article))
	return article
}

func statusMembers(t *testing.T, client *redis.Client, status domain.ArticleStatus) map[string]string {
	t.Helper()
	fields, err := client.HGetAll(context.Background(), readmodel.StatusKey(status)).Result()
	require.NoError(t, err)
	return fields
}

func TestSynchronizer_UpsertCreate(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	sync := readmodel.NewSynchronizer(client)
	h := newHistory()
	id := h.articleID.String()

	require.NoError(t, sync.Upsert(ctx, h.created("Hello", "World")))

	article := loadArticle(t, client, id)
	assert.Equal(t, "Hello", article.Title)
	assert.Equal(t, domain.StatusDraft, article.Status)
	assert.Equal(t, 1, article.Version)

	member, err := client.SIsMember(ctx, readmodel.AllArticlesKey, readmodel.ArticleKey(id)).Result()
	require.NoError(t, err)
	assert.True(t, member)

	drafts := statusMembers(t, client, domain.StatusDraft)
	require.Contains(t, drafts, id)
	var entry readmodel.StatusEntry
	require.NoError(t, json.Unmarshal([]byte(drafts[id]), &entry))
	assert.Equal(t, "Hello", entry.Title)
	assert.Equal(t, article.UpdatedAt, entry.UpdatedAt)
}

func TestSynchronizer_StatusBucketMoves(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	sync := readmodel.NewSynchronizer(client)
	h := newHistory()
	id := h.articleID.String()

	require.NoError(t, sync.Upsert(ctx, h.created("T", "C")))
	require.NoError(t, sync.Upsert(ctx, h.titleChanged("Latest")))
	require.NoError(t, sync.Upsert(ctx, h.next(domain.Published{})))

	article := loadArticle(t, client, id)
	assert.Equal(t, domain.StatusPublished, article.Status)
	assert.Equal(t, "Latest", article.Title)
	assert.NotNil(t, article.PublishedAt)

	assert.NotContains(t, statusMembers(t, client, domain.StatusDraft), id)
	assert.Contains(t, statusMembers(t, client, domain.StatusPublished), id)
}

func TestSynchronizer_IgnoresRedeliveredEvents(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	sync := readmodel.NewSynchronizer(client)
	h := newHistory()

	created := h.created("T", "C")
	renamed := h.titleChanged("Renamed")

	require.NoError(t, sync.Upsert(ctx, created))
	require.NoError(t, sync.Upsert(ctx, renamed))
	require.NoError(t, sync.Upsert(ctx, created))
	require.NoError(t, sync.Upsert(ctx, renamed))

	article := loadArticle(t, client, h.articleID.String())
	assert.Equal(t, "Renamed", article.Title)
	assert.Equal(t, 2, article.Version)
}

func TestSynchronizer_ChangeWithoutCreateFails(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	sync := readmodel.NewSynchronizer(client)
	h := newHistory()
	h.version = 1

	err := sync.Upsert(ctx, h.contentChanged("orphan"))
	require.ErrorIs(t, err, readmodel.ErrNoCurrentState)
	assert.Empty(t, mr.Keys())
}

func TestSynchronizer_UpsertRejectsDelete(t *testing.T) {
	_, client := newRedis(t)
	sync := readmodel.NewSynchronizer(client)
	h := newHistory()

	err := sync.Upsert(context.Background(), h.deleted())
	assert.ErrorIs(t, err, readmodel.ErrDeleteViaUpsert)
}

func TestSynchronizer_Delete(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	sync := readmodel.NewSynchronizer(client)
	h := newHistory()
	id := h.articleID.String()

	require.NoError(t, sync.Upsert(ctx, h.created("T", "C")))
	require.NoError(t, sync.Upsert(ctx, h.next(domain.Published{})))
	require.NoError(t, client.Set(ctx, readmodel.StatsKey(id), `{"viewCount":3}`, 0).Err())

	require.NoError(t, sync.Delete(ctx, h.deleted()))

	assert.False(t, mr.Exists(readmodel.ArticleKey(id)))
	assert.False(t, mr.Exists(readmodel.StatsKey(id)))
	member, err := client.SIsMember(ctx, readmodel.AllArticlesKey, readmodel.ArticleKey(id)).Result()
	require.NoError(t, err)
	assert.False(t, member)
	assert.NotContains(t, statusMembers(t, client, domain.StatusPublished), id)
}

func TestSynchronizer_DeleteWithoutRecordClearsEveryBucket(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	sync := readmodel.NewSynchronizer(client)
	h := newHistory()
	id := h.articleID.String()

	for _, status := range domain.ValidStatuses {
		require.NoError(t, client.HSet(ctx, readmodel.StatusKey(status), id, `{}`, "other", `{}`).Err())
	}

	require.NoError(t, sync.Delete(ctx, h.deleted()))

	for _, status := range domain.ValidStatuses {
		members := statusMembers(t, client, status)
		assert.NotContains(t, members, id, string(status))
		assert.Contains(t, members, "other", string(status))
	}
}

func TestSynchronizer_DeleteRejectsOtherEvents(t *testing.T) {
	_, client := newRedis(t)
	sync := readmodel.NewSynchronizer(client)
	h := newHistory()

	err := sync.Delete(context.Background(), h.created("T", "C"))
	assert.ErrorIs(t, err, readmodel.ErrNotDelete)
}

func TestSynchronizer_ApplyRoutesByType(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	sync := readmodel.NewSynchronizer(client)
	h := newHistory()

	require.NoError(t, sync.Apply(ctx, h.created("T", "C")))
	assert.True(t, mr.Exists(readmodel.ArticleKey(h.articleID.String())))

	require.NoError(t, sync.Apply(ctx, h.deleted()))
	assert.False(t, mr.Exists(readmodel.ArticleKey(h.articleID.String())))
}

func TestSynchronizer_CorruptRecord(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	sync := readmodel.NewSynchronizer(client)
	h := newHistory()

	require.NoError(t, client.Set(ctx, readmodel.ArticleKey(h.articleID.String()), "not json", 0).Err())

	err := sync.Upsert(ctx, h.created("T", "C"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode read model")
}
