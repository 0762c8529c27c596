package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/eventcodec"
	"blog-article-service/internal/logger"
	"blog-article-service/internal/metrics"
)

const (
	DefaultGroupID         = "article-read-model"
	DefaultDeadLetterTopic = "article-events-dead-letter"
	DefaultMaxRetries      = 3
	DefaultRetryDelay      = 500 * time.Millisecond
)

// Handler processes one decoded event.
type Handler func(ctx context.Context, event domain.Event) error

// SubscriberConfig tunes a KafkaSubscriber. Zero values take the defaults.
type SubscriberConfig struct {
	Topic           string
	GroupID         string
	DeadLetterTopic string
	MaxRetries      int
	RetryDelay      time.Duration
}

// DeadLetterMessage is the JSON body sent to the dead-letter topic.
type DeadLetterMessage struct {
	OriginalTopic string          `json:"originalTopic"`
	GroupID       string          `json:"groupId"`
	Partition     int32           `json:"partition"`
	Offset        int64           `json:"offset"`
	Key           string          `json:"key,omitempty"`
	Payload       string          `json:"payload"`
	Error         DeadLetterError `json:"error"`
	FailedAt      string          `json:"failedAt"`
}

// DeadLetterError describes the last failure of a dead-lettered message.
type DeadLetterError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// KafkaSubscriber consumes article events through a consumer group. Each
// message is retried with exponential backoff and sent to the dead-letter
// topic once retries are exhausted.
type KafkaSubscriber struct {
	group      sarama.ConsumerGroup
	deadLetter sarama.SyncProducer
	cfg        SubscriberConfig
	sleep      func(ctx context.Context, d time.Duration) error
	now        func() time.Time
	log        *slog.Logger
}

// NewKafkaSubscriber creates a subscriber. deadLetter may be nil, in which
// case exhausted messages are only logged.
func NewKafkaSubscriber(group sarama.ConsumerGroup, deadLetter sarama.SyncProducer, cfg SubscriberConfig) *KafkaSubscriber {
	if cfg.Topic == "" {
		cfg.Topic = domain.DefaultEventTopic
	}
	if cfg.GroupID == "" {
		cfg.GroupID = DefaultGroupID
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	return &KafkaSubscriber{
		group:      group,
		deadLetter: deadLetter,
		cfg:        cfg,
		sleep:      sleepContext,
		now:        func() time.Time { return time.Now().UTC() },
		log:        logger.WithComponent("kafka-subscriber"),
	}
}

// WithSleep overrides how the subscriber waits between retries.
func (s *KafkaSubscriber) WithSleep(sleep func(ctx context.Context, d time.Duration) error) *KafkaSubscriber {
	s.sleep = sleep
	return s
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff returns the delay before retry number attempt+1.
func (s *KafkaSubscriber) Backoff(attempt int) time.Duration {
	return s.cfg.RetryDelay * time.Duration(1<<(attempt-1))
}

// Subscribe consumes the topic until ctx is cancelled, passing every
// event to handler.
func (s *KafkaSubscriber) Subscribe(ctx context.Context, handler Handler) error {
	go func() {
		for err := range s.group.Errors() {
			s.log.Error("Kafka consumer error", slog.String("error", err.Error()))
		}
	}()

	h := &consumerGroupHandler{subscriber: s, handler: handler}
	s.log.Info("Kafka subscriber started",
		slog.String("topic", s.cfg.Topic),
		slog.String("group", s.cfg.GroupID))

	for {
		if err := s.group.Consume(ctx, []string{s.cfg.Topic}, h); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) || errors.Is(err, context.Canceled) {
				return nil
			}
			s.log.Error("Error from Kafka consumer", slog.String("error", err.Error()))
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// HandleMessage runs handler for msg with retries and dead-lettering. It
// reports false only when ctx ended before the message was settled, in
// which case the offset must not be committed.
func (s *KafkaSubscriber) HandleMessage(ctx context.Context, msg *sarama.ConsumerMessage, handler Handler) bool {
	var lastErr error
	for attempt := 1; ; attempt++ {
		lastErr = s.handleOnce(ctx, msg, handler)
		if lastErr == nil {
			metrics.ObserveConsumed(metrics.ResultSuccess)
			return true
		}
		if attempt >= s.cfg.MaxRetries {
			break
		}

		delay := s.Backoff(attempt)
		metrics.EventRetriesTotal.Inc()
		s.log.WarnContext(ctx, "Retrying message",
			slog.String("topic", msg.Topic),
			slog.Int64("offset", msg.Offset),
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.String("error", lastErr.Error()))

		if err := s.sleep(ctx, delay); err != nil {
			return false
		}
	}

	metrics.ObserveConsumed(metrics.ResultError)
	s.sendToDeadLetter(ctx, msg, lastErr)
	return true
}

func (s *KafkaSubscriber) handleOnce(ctx context.Context, msg *sarama.ConsumerMessage, handler Handler) error {
	event, err := eventcodec.Unmarshal(msg.Value)
	if err != nil {
		return err
	}
	return handler(ctx, event)
}

func (s *KafkaSubscriber) sendToDeadLetter(ctx context.Context, msg *sarama.ConsumerMessage, cause error) {
	body := DeadLetterMessage{
		OriginalTopic: msg.Topic,
		GroupID:       s.cfg.GroupID,
		Partition:     msg.Partition,
		Offset:        msg.Offset,
		Key:           string(msg.Key),
		Payload:       string(msg.Value),
		Error:         DeadLetterError{Name: errorName(cause), Message: cause.Error()},
		FailedAt:      s.now().Format(time.RFC3339Nano),
	}

	if s.deadLetter == nil || s.cfg.DeadLetterTopic == "" {
		metrics.ObserveDeadLetter(metrics.ResultLogged)
		s.log.ErrorContext(ctx, "Message exhausted retries and no dead-letter topic is configured",
			slog.String("topic", msg.Topic),
			slog.Int64("offset", msg.Offset),
			slog.String("payload", body.Payload),
			slog.String("error", cause.Error()))
		return
	}

	value, err := json.Marshal(body)
	if err != nil {
		metrics.ObserveDeadLetter(metrics.ResultFailed)
		s.log.ErrorContext(ctx, "Failed to encode dead-letter message", slog.String("error", err.Error()))
		return
	}

	out := &sarama.ProducerMessage{
		Topic: s.cfg.DeadLetterTopic,
		Value: sarama.ByteEncoder(value),
	}
	if len(msg.Key) > 0 {
		out.Key = sarama.ByteEncoder(msg.Key)
	}

	if _, _, err := s.deadLetter.SendMessage(out); err != nil {
		metrics.ObserveDeadLetter(metrics.ResultFailed)
		s.log.ErrorContext(ctx, "Failed to send message to dead-letter topic",
			slog.String("dead_letter_topic", s.cfg.DeadLetterTopic),
			slog.String("error", err.Error()))
		return
	}

	metrics.ObserveDeadLetter(metrics.ResultSent)
	s.log.WarnContext(ctx, "Message sent to dead-letter topic",
		slog.String("dead_letter_topic", s.cfg.DeadLetterTopic),
		slog.String("topic", msg.Topic),
		slog.Int64("offset", msg.Offset))
}

func errorName(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPayload):
		return "InvalidPayloadError"
	case errors.Is(err, domain.ErrInconsistentStream):
		return "InconsistentStreamError"
	case errors.Is(err, domain.ErrValidation):
		return "ValidationError"
	default:
		return "Error"
	}
}

// Close leaves the consumer group and closes the dead-letter producer.
func (s *KafkaSubscriber) Close() error {
	err := s.group.Close()
	if s.deadLetter != nil {
		if dlqErr := s.deadLetter.Close(); dlqErr != nil && err == nil {
			err = dlqErr
		}
	}
	return err
}

// consumerGroupHandler implements sarama.ConsumerGroupHandler
type consumerGroupHandler struct {
	subscriber *KafkaSubscriber
	handler    Handler
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim handles the messages of one partition in order.
func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}
			if h.subscriber.HandleMessage(session.Context(), message, h.handler) {
				session.MarkMessage(message, "")
			}
		case <-session.Context().Done():
			return nil
		}
	}
}

// NewConsumerGroupHandler exposes the claim loop for a given handler.
func (s *KafkaSubscriber) NewConsumerGroupHandler(handler Handler) sarama.ConsumerGroupHandler {
	return &consumerGroupHandler{subscriber: s, handler: handler}
}
