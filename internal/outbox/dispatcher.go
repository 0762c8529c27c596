// Package outbox relays stored events from the outbox table to the broker.
package outbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/eventcodec"
	"blog-article-service/internal/logger"
	"blog-article-service/internal/metrics"
	"blog-article-service/internal/repository"
)

const (
	DefaultBatchSize    = 10
	DefaultRetryDelay   = 5 * time.Second
	DefaultMaxAttempts  = 5
	DefaultPollInterval = 5 * time.Second

	emptyPayloadError = "payload is empty"
)

// Publisher sends one event to the broker.
type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

// Config tunes a Dispatcher. Zero values take the defaults above.
type Config struct {
	Topic       string
	BatchSize   int
	RetryDelay  time.Duration
	MaxAttempts int
}

// Result counts what happened to the records of one batch.
type Result struct {
	Sent    int
	Retried int
	Failed  int
}

// Dispatcher polls pending outbox records and publishes them.
type Dispatcher struct {
	repo      repository.OutboxRepository
	publisher Publisher
	cfg       Config
	now       func() time.Time
	log       *slog.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(repo repository.OutboxRepository, publisher Publisher, cfg Config) *Dispatcher {
	if cfg.Topic == "" {
		cfg.Topic = domain.DefaultEventTopic
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	return &Dispatcher{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
		log:       logger.WithComponent("outbox-dispatcher"),
	}
}

// WithClock overrides the time source.
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

// Dispatch processes one batch of due records. A failure on one record
// never stops the rest of the batch.
func (d *Dispatcher) Dispatch(ctx context.Context) (Result, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.OutboxBatchDuration)

	var res Result
	records, err := d.repo.FetchPending(ctx, d.cfg.Topic, d.now(), d.cfg.BatchSize)
	if err != nil {
		return res, fmt.Errorf("fetch pending outbox events: %w", err)
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		outcome, err := d.dispatchOne(ctx, rec)
		if err != nil {
			d.log.ErrorContext(ctx, "Failed to update outbox record",
				slog.String("outbox_id", rec.ID),
				slog.String("error", err.Error()))
			continue
		}
		switch outcome {
		case metrics.ResultSent:
			res.Sent++
		case metrics.ResultRetried:
			res.Retried++
		case metrics.ResultFailed:
			res.Failed++
		}
		metrics.ObserveOutbox(outcome)
	}

	return res, nil
}

func (d *Dispatcher) dispatchOne(ctx context.Context, rec domain.OutboxRecord) (string, error) {
	attempts := rec.Attempts + 1

	if isEmptyPayload(rec.Payload) {
		d.log.WarnContext(ctx, "Outbox record has no payload",
			slog.String("outbox_id", rec.ID))
		return metrics.ResultFailed, d.repo.MarkFailed(ctx, rec.ID, attempts, emptyPayloadError)
	}

	event, err := eventcodec.Unmarshal(rec.Payload)
	if err != nil {
		d.log.WarnContext(ctx, "Outbox record payload cannot be decoded",
			slog.String("outbox_id", rec.ID),
			slog.String("error", err.Error()))
		return metrics.ResultFailed, d.repo.MarkFailed(ctx, rec.ID, attempts, err.Error())
	}

	if err := d.publisher.Publish(ctx, event); err != nil {
		if attempts >= d.cfg.MaxAttempts {
			d.log.ErrorContext(ctx, "Outbox record exhausted publish attempts",
				slog.String("outbox_id", rec.ID),
				slog.String("article_id", event.ArticleID.String()),
				slog.Int("attempts", attempts),
				slog.String("error", err.Error()))
			return metrics.ResultFailed, d.repo.MarkFailed(ctx, rec.ID, attempts, err.Error())
		}
		d.log.WarnContext(ctx, "Outbox publish failed, rescheduling",
			slog.String("outbox_id", rec.ID),
			slog.Int("attempts", attempts),
			slog.String("error", err.Error()))
		return metrics.ResultRetried, d.repo.Reschedule(ctx, rec.ID, attempts, d.now().Add(d.cfg.RetryDelay), err.Error())
	}

	return metrics.ResultSent, d.repo.MarkSent(ctx, rec.ID, d.now())
}

// Run dispatches a batch every interval until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.log.Info("Outbox dispatcher started",
		slog.String("topic", d.cfg.Topic),
		slog.Duration("interval", interval))

	for {
		res, err := d.Dispatch(ctx)
		switch {
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			d.log.Error("Outbox dispatch failed", slog.String("error", err.Error()))
		case res.Sent+res.Retried+res.Failed > 0:
			d.log.Info("Outbox batch dispatched",
				slog.Int("sent", res.Sent),
				slog.Int("retried", res.Retried),
				slog.Int("failed", res.Failed))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Close releases the publisher.
func (d *Dispatcher) Close() error {
	return d.publisher.Close()
}

// isEmptyPayload reports whether a JSONB payload carries no event, either
// because the column is empty or because it holds the literal null.
func isEmptyPayload(payload []byte) bool {
	trimmed := bytes.TrimSpace(payload)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
