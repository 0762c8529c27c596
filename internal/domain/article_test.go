package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-article-service/internal/domain"
)

func newArticle(t *testing.T) *domain.Article {
	t.Helper()
	return domain.CreateArticle(
		domain.NewArticleID(),
		domain.NewAuthorID(),
		domain.MustTitle("First title"),
		domain.MustContent("First content"),
	)
}

func TestCreateArticle(t *testing.T) {
	a := newArticle(t)

	assert.Equal(t, 1, a.Version())
	require.NotNil(t, a.CurrentTitle())
	assert.Equal(t, "First title", a.CurrentTitle().String())
	require.NotNil(t, a.CurrentContent())
	assert.Equal(t, "First content", a.CurrentContent().String())

	latest, ok := a.LatestEvent()
	require.True(t, ok)
	assert.Equal(t, domain.EventTypeCreate, latest.Type())
	assert.Equal(t, a.ID(), latest.ArticleID)
	assert.Equal(t, a.AuthorID(), latest.AuthorID)
}

func TestArticle_ChangeTitle(t *testing.T) {
	t.Run("appends change event with old and new title", func(t *testing.T) {
		a := newArticle(t)

		changed := a.ChangeTitle(domain.MustTitle("Second title"))

		assert.True(t, changed)
		assert.Equal(t, 2, a.Version())
		assert.Equal(t, "Second title", a.CurrentTitle().String())

		latest, _ := a.LatestEvent()
		payload, ok := latest.Payload.(domain.TitleChanged)
		require.True(t, ok)
		require.NotNil(t, payload.OldTitle)
		assert.Equal(t, "First title", payload.OldTitle.String())
		assert.Equal(t, 2, latest.Version)
	})

	t.Run("same title is a no-op", func(t *testing.T) {
		a := newArticle(t)

		changed := a.ChangeTitle(domain.MustTitle("  First title "))

		assert.False(t, changed)
		assert.Equal(t, 1, a.Version())
	})
}

func TestArticle_ChangeContent(t *testing.T) {
	t.Run("appends change event", func(t *testing.T) {
		a := newArticle(t)

		assert.True(t, a.ChangeContent(domain.MustContent("Updated")))
		assert.Equal(t, 2, a.Version())
		assert.Equal(t, "Updated", a.CurrentContent().String())
	})

	t.Run("same content is a no-op", func(t *testing.T) {
		a := newArticle(t)

		assert.False(t, a.ChangeContent(domain.MustContent("First content")))
		assert.Equal(t, 1, a.Version())
	})
}

func TestArticle_Lifecycle(t *testing.T) {
	a := newArticle(t)

	require.NoError(t, a.Publish())
	a.Archive()
	a.ReDraft()

	events := a.Events()
	require.Len(t, events, 4)
	assert.Equal(t, domain.EventTypePublish, events[1].Type())
	assert.Equal(t, domain.EventTypeArchive, events[2].Type())
	assert.Equal(t, domain.EventTypeReDraft, events[3].Type())
	for i, e := range events {
		assert.Equal(t, i+1, e.Version)
	}

	del := a.NewDeleteEvent()
	assert.Equal(t, domain.EventTypeDelete, del.Type())
	assert.Equal(t, 5, del.Version)
	assert.Equal(t, 4, a.Version(), "delete event must not be applied to the aggregate")
}

func TestArticle_PublishWithoutTitle(t *testing.T) {
	articleID := domain.NewArticleID()
	authorID := domain.NewAuthorID()
	a, err := domain.Rehydrate([]domain.Event{
		domain.NewEvent(articleID, authorID, 1, domain.ContentChanged{NewContent: domain.MustContent("only content")}),
	})
	require.NoError(t, err)

	err = a.Publish()

	require.ErrorIs(t, err, domain.ErrBusinessRule)
	assert.Contains(t, err.Error(), "title or content is missing")
	assert.Equal(t, 1, a.Version())
}

func TestRehydrate(t *testing.T) {
	articleID := domain.NewArticleID()
	authorID := domain.NewAuthorID()
	create := domain.NewEvent(articleID, authorID, 1, domain.Created{
		Title:   domain.MustTitle("A"),
		Content: domain.MustContent("B"),
	})
	old := domain.MustTitle("A")
	change := domain.NewEvent(articleID, authorID, 2, domain.TitleChanged{OldTitle: &old, NewTitle: domain.MustTitle("C")})
	publish := domain.NewEvent(articleID, authorID, 3, domain.Published{})

	t.Run("replays events in version order regardless of input order", func(t *testing.T) {
		a, err := domain.Rehydrate([]domain.Event{publish, create, change})
		require.NoError(t, err)

		assert.Equal(t, 3, a.Version())
		assert.Equal(t, "C", a.CurrentTitle().String())
		assert.Equal(t, articleID, a.ID())
		assert.Equal(t, authorID, a.AuthorID())
	})

	t.Run("fails on empty history", func(t *testing.T) {
		_, err := domain.Rehydrate(nil)
		assert.ErrorIs(t, err, domain.ErrInconsistentStream)
	})

	t.Run("fails on version gap", func(t *testing.T) {
		_, err := domain.Rehydrate([]domain.Event{create, publish})
		require.ErrorIs(t, err, domain.ErrInconsistentStream)
		assert.Contains(t, err.Error(), "Invalid event version: expected 2, received 3")
	})

	t.Run("fails on mismatched article id", func(t *testing.T) {
		foreign := domain.NewEvent(domain.NewArticleID(), authorID, 2, domain.Published{})
		_, err := domain.Rehydrate([]domain.Event{create, foreign})
		require.ErrorIs(t, err, domain.ErrInconsistentStream)
		assert.Contains(t, err.Error(), "Inconsistent Article ID in event stream")
	})

	t.Run("fails on mismatched author id", func(t *testing.T) {
		foreign := domain.NewEvent(articleID, domain.NewAuthorID(), 2, domain.Published{})
		_, err := domain.Rehydrate([]domain.Event{create, foreign})
		require.ErrorIs(t, err, domain.ErrInconsistentStream)
		assert.Contains(t, err.Error(), "Inconsistent Author ID in event stream")
	})
}

func TestEvent_Equal(t *testing.T) {
	articleID := domain.NewArticleID()
	authorID := domain.NewAuthorID()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	base := domain.Event{ArticleID: articleID, AuthorID: authorID, Version: 2, OccurredAt: at,
		Payload: domain.TitleChanged{NewTitle: domain.MustTitle("X")}}

	same := base
	assert.True(t, base.Equal(same))

	old := domain.MustTitle("W")
	withOld := base
	withOld.Payload = domain.TitleChanged{OldTitle: &old, NewTitle: domain.MustTitle("X")}
	assert.False(t, base.Equal(withOld))

	otherVersion := base
	otherVersion.Version = 3
	assert.False(t, base.Equal(otherVersion))

	otherType := base
	otherType.Payload = domain.Published{}
	assert.False(t, base.Equal(otherType))
}

func TestNewEvent_MicrosecondPrecision(t *testing.T) {
	event := domain.NewEvent(domain.NewArticleID(), domain.NewAuthorID(), 1, domain.Published{})

	assert.Equal(t, event.OccurredAt, event.OccurredAt.Truncate(time.Microsecond))
	assert.Zero(t, event.OccurredAt.Nanosecond()%int(time.Microsecond))
	assert.Equal(t, time.UTC, event.OccurredAt.Location())

	stored := event
	stored.OccurredAt = time.UnixMicro(event.OccurredAt.UnixMicro()).UTC()
	assert.True(t, event.Equal(stored))
}
