package readmodel

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/logger"
	"blog-article-service/internal/metrics"
)

const scanBatch = 200

// clearPatterns cover records, stats keys and every index.
var clearPatterns = []string{"article:*", "articles:*"}

// EventStreamer replays the stored event history in (article, version) order.
type EventStreamer interface {
	StreamAll(ctx context.Context, callback func(domain.Event) error) error
}

// ResyncResult summarizes one rebuild.
type ResyncResult struct {
	ClearedKeys int
	Processed   int
}

// Resynchronizer rebuilds the read model from the event store.
type Resynchronizer struct {
	client       redis.Cmdable
	events       EventStreamer
	synchronizer *Synchronizer
	running      atomic.Bool
	log          *slog.Logger
}

// NewResynchronizer creates a new Resynchronizer.
func NewResynchronizer(client redis.Cmdable, events EventStreamer, synchronizer *Synchronizer) *Resynchronizer {
	return &Resynchronizer{
		client:       client,
		events:       events,
		synchronizer: synchronizer,
		log:          logger.WithComponent("resync-readmodel"),
	}
}

// Rebuild clears every read-model key and replays the full history.
func (r *Resynchronizer) Rebuild(ctx context.Context) (ResyncResult, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.ResyncDuration)

	r.log.InfoContext(ctx, "Starting resynchronization of article read model")

	cleared, err := r.clear(ctx)
	if err != nil {
		return ResyncResult{}, err
	}

	result := ResyncResult{ClearedKeys: cleared}
	err = r.events.StreamAll(ctx, func(event domain.Event) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("resync interrupted after %d events: %w", result.Processed, err)
		}
		if err := r.synchronizer.Apply(ctx, event); err != nil {
			return fmt.Errorf("replay %s v%d of article %s: %w",
				event.Type(), event.Version, event.ArticleID, err)
		}
		result.Processed++
		return nil
	})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return result, err
	}

	r.log.InfoContext(ctx, "Resynchronization completed",
		slog.Int("cleared_keys", result.ClearedKeys),
		slog.Int("processed_events", result.Processed))
	return result, nil
}

func (r *Resynchronizer) clear(ctx context.Context) (int, error) {
	keys := make(map[string]struct{})
	for _, pattern := range clearPatterns {
		iter := r.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
		for iter.Next(ctx) {
			keys[iter.Val()] = struct{}{}
		}
		if err := iter.Err(); err != nil {
			return 0, fmt.Errorf("scan %s: %w", pattern, err)
		}
	}

	if len(keys) == 0 {
		r.log.InfoContext(ctx, "Redis read model already empty")
		return 0, nil
	}

	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for key := range keys {
			pipe.Del(ctx, key)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("clear read model: %w", err)
	}

	r.log.InfoContext(ctx, "Cleared Redis read model", slog.Int("keys", len(keys)))
	return len(keys), nil
}

// RunEvery rebuilds immediately and then on every tick of interval until
// ctx is cancelled. A tick that fires while a rebuild is still running is
// skipped. Failed rebuilds are logged and retried on the next tick.
func (r *Resynchronizer) RunEvery(ctx context.Context, interval time.Duration) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	r.trigger(ctx, &wg, "initial run")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.log.InfoContext(ctx, "Scheduling resynchronization", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.trigger(ctx, &wg, "interval")
		}
	}
}

func (r *Resynchronizer) trigger(ctx context.Context, wg *sync.WaitGroup, reason string) {
	if !r.running.CompareAndSwap(false, true) {
		r.log.InfoContext(ctx, "Previous resync still in progress, skipping this interval")
		return
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer r.running.Store(false)

		r.log.InfoContext(ctx, "Resynchronization triggered", slog.String("trigger", reason))
		if _, err := r.Rebuild(ctx); err != nil && ctx.Err() == nil {
			r.log.ErrorContext(ctx, "Scheduled resync failed", slog.String("error", err.Error()))
		}
	}()
}
