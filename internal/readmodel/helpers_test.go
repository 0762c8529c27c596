package readmodel_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"blog-article-service/internal/domain"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// history builds consecutive events for one article, one minute apart.
type history struct {
	articleID domain.ArticleID
	authorID  domain.AuthorID
	version   int
}

func newHistory() *history {
	return &history{articleID: domain.NewArticleID(), authorID: domain.NewAuthorID()}
}

func (h *history) next(payload domain.Payload) domain.Event {
	h.version++
	event := domain.NewEvent(h.articleID, h.authorID, h.version, payload)
	event.OccurredAt = baseTime.Add(time.Duration(h.version) * time.Minute)
	return event
}

func (h *history) created(title, content string) domain.Event {
	return h.next(domain.Created{Title: domain.MustTitle(title), Content: domain.MustContent(content)})
}

func (h *history) titleChanged(title string) domain.Event {
	return h.next(domain.TitleChanged{NewTitle: domain.MustTitle(title)})
}

func (h *history) contentChanged(content string) domain.Event {
	return h.next(domain.ContentChanged{NewContent: domain.MustContent(content)})
}

func (h *history) deleted() domain.Event {
	return h.next(domain.Deleted{})
}
