package readmodel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/logger"
	"blog-article-service/internal/metrics"
)

// Synchronizer applies article events to the Redis read model.
//
// Each call touches several keys in one pipeline. Redis does not make the
// pipeline atomic, so a crash can leave a record and its indexes out of
// step until the next resynchronization.
type Synchronizer struct {
	client redis.Cmdable
	log    *slog.Logger
}

// NewSynchronizer creates a new Synchronizer.
func NewSynchronizer(client redis.Cmdable) *Synchronizer {
	return &Synchronizer{
		client: client,
		log:    logger.WithComponent("readmodel-synchronizer"),
	}
}

// Apply routes event to Delete or Upsert.
func (s *Synchronizer) Apply(ctx context.Context, event domain.Event) error {
	if event.Type() == domain.EventTypeDelete {
		return s.Delete(ctx, event)
	}
	return s.Upsert(ctx, event)
}

// Upsert projects a non-DELETE event. Events whose version is not newer
// than the stored record are redeliveries and are ignored.
func (s *Synchronizer) Upsert(ctx context.Context, event domain.Event) error {
	if event.Type() == domain.EventTypeDelete {
		return ErrDeleteViaUpsert
	}

	id := event.ArticleID.String()
	key := ArticleKey(id)

	current, err := s.load(ctx, key)
	if err != nil {
		return err
	}

	if current != nil && event.Version <= current.Version {
		metrics.ObserveProjection(string(event.Type()), metrics.ResultSkipped)
		s.log.DebugContext(ctx, "Skipping stale event",
			slog.String("article_id", id),
			slog.Int("event_version", event.Version),
			slog.Int("stored_version", current.Version))
		return nil
	}

	next, err := NextState(current, event)
	if err != nil {
		metrics.ObserveProjection(string(event.Type()), metrics.ResultError)
		return err
	}

	record, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode read model: %w", err)
	}
	entry, err := json.Marshal(StatusEntry{Title: next.Title, UpdatedAt: next.UpdatedAt})
	if err != nil {
		return fmt.Errorf("encode status entry: %w", err)
	}

	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, record, 0)
		pipe.SAdd(ctx, AllArticlesKey, key)
		if current != nil && current.Status != next.Status {
			pipe.HDel(ctx, StatusKey(current.Status), next.ID)
		}
		pipe.HSet(ctx, StatusKey(next.Status), next.ID, entry)
		return nil
	})
	if err != nil {
		metrics.ObserveProjection(string(event.Type()), metrics.ResultError)
		return fmt.Errorf("write read model: %w", err)
	}

	metrics.ObserveProjection(string(event.Type()), metrics.ResultApplied)
	return nil
}

// Delete removes the article record, its stats key and every index entry.
// When the record is already gone the id is removed from all status
// buckets.
func (s *Synchronizer) Delete(ctx context.Context, event domain.Event) error {
	if event.Type() != domain.EventTypeDelete {
		return ErrNotDelete
	}

	id := event.ArticleID.String()
	key := ArticleKey(id)

	current, err := s.load(ctx, key)
	if err != nil {
		return err
	}

	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key, StatsKey(id))
		pipe.SRem(ctx, AllArticlesKey, key)
		if current != nil {
			pipe.HDel(ctx, StatusKey(current.Status), id)
			return nil
		}
		for _, status := range domain.ValidStatuses {
			pipe.HDel(ctx, StatusKey(status), id)
		}
		return nil
	})
	if err != nil {
		metrics.ObserveProjection(string(event.Type()), metrics.ResultError)
		return fmt.Errorf("delete read model: %w", err)
	}

	metrics.ObserveProjection(string(event.Type()), metrics.ResultApplied)
	return nil
}

func (s *Synchronizer) load(ctx context.Context, key string) (*Article, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load read model: %w", err)
	}

	var article Article
	if err := json.Unmarshal(raw, &article); err != nil {
		return nil, fmt.Errorf("decode read model %s: %w", key, err)
	}
	return &article, nil
}
