package readmodel

import (
	"errors"
	"fmt"
	"time"

	"blog-article-service/internal/domain"
)

var (
	// ErrNoCurrentState is returned when a non-CREATE event arrives for an
	// article that has no record yet.
	ErrNoCurrentState = errors.New("current state is null")
	// ErrDeleteViaUpsert is returned when a DELETE event reaches the upsert path.
	ErrDeleteViaUpsert = errors.New("DELETE event must be processed via delete()")
	// ErrNotDelete is returned when Delete receives any other event type.
	ErrNotDelete = errors.New("delete() only accepts DELETE events")
)

// NextState folds event into current and returns the new record. current
// is nil when the article has not been projected yet. It never mutates
// current.
func NextState(current *Article, event domain.Event) (Article, error) {
	occurredAt := event.OccurredAt.UTC().Format(time.RFC3339Nano)

	if created, ok := event.Payload.(domain.Created); ok {
		return Article{
			ID:        event.ArticleID.String(),
			Title:     created.Title.String(),
			Content:   created.Content.String(),
			AuthorID:  event.AuthorID.String(),
			Status:    domain.StatusDraft,
			Version:   event.Version,
			CreatedAt: occurredAt,
			UpdatedAt: occurredAt,
		}, nil
	}

	if event.Type() == domain.EventTypeDelete {
		return Article{}, ErrDeleteViaUpsert
	}
	if current == nil {
		return Article{}, fmt.Errorf("%w for %s event", ErrNoCurrentState, event.Type())
	}

	next := *current
	next.Version = event.Version
	next.UpdatedAt = occurredAt

	switch p := event.Payload.(type) {
	case domain.TitleChanged:
		next.Title = p.NewTitle.String()
	case domain.ContentChanged:
		next.Content = p.NewContent.String()
	case domain.Published:
		next.Status = domain.StatusPublished
		next.PublishedAt = &occurredAt
	case domain.Archived:
		next.Status = domain.StatusArchived
	case domain.ReDrafted:
		next.Status = domain.StatusDraft
		next.PublishedAt = nil
	default:
		return Article{}, fmt.Errorf("unknown event type: %s", event.Type())
	}
	return next, nil
}
