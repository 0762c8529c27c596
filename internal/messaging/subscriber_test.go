package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/eventcodec"
	"blog-article-service/internal/messaging"
)

type recordedSleeps struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recordedSleeps) sleep(_ context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delays = append(r.delays, d)
	return nil
}

func encodedMessage(t *testing.T, event domain.Event) *sarama.ConsumerMessage {
	t.Helper()
	body, err := eventcodec.Marshal(event)
	require.NoError(t, err)
	return &sarama.ConsumerMessage{
		Topic:     "article-events",
		Partition: 2,
		Offset:    41,
		Key:       []byte(event.ArticleID.String()),
		Value:     body,
	}
}

func TestKafkaSubscriber_HandleMessageSuccess(t *testing.T) {
	event := newCreatedEvent(t)
	sleeps := &recordedSleeps{}
	sub := messaging.NewKafkaSubscriber(nil, nil, messaging.SubscriberConfig{}).WithSleep(sleeps.sleep)

	var received domain.Event
	ok := sub.HandleMessage(context.Background(), encodedMessage(t, event), func(_ context.Context, e domain.Event) error {
		received = e
		return nil
	})

	assert.True(t, ok)
	assert.True(t, received.Equal(event))
	assert.Empty(t, sleeps.delays)
}

func TestKafkaSubscriber_RetriesWithBackoff(t *testing.T) {
	sleeps := &recordedSleeps{}
	sub := messaging.NewKafkaSubscriber(nil, nil, messaging.SubscriberConfig{
		MaxRetries: 3,
		RetryDelay: 100 * time.Millisecond,
	}).WithSleep(sleeps.sleep)

	calls := 0
	ok := sub.HandleMessage(context.Background(), encodedMessage(t, newCreatedEvent(t)), func(context.Context, domain.Event) error {
		calls++
		if calls < 3 {
			return errors.New("redis unavailable")
		}
		return nil
	})

	assert.True(t, ok)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, sleeps.delays)
}

func TestKafkaSubscriber_DeadLettersAfterMaxRetries(t *testing.T) {
	msg := encodedMessage(t, newCreatedEvent(t))

	dlq := mocks.NewSyncProducer(t, nil)
	dlq.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(out *sarama.ProducerMessage) error {
		if out.Topic != "article-events-dead-letter" {
			return errors.New("unexpected topic " + out.Topic)
		}
		value, err := out.Value.Encode()
		if err != nil {
			return err
		}
		var body messaging.DeadLetterMessage
		if err := json.Unmarshal(value, &body); err != nil {
			return err
		}
		if body.OriginalTopic != "article-events" || body.GroupID != "readers" {
			return errors.New("dead-letter origin mismatch")
		}
		if body.Payload != string(msg.Value) || body.Key != string(msg.Key) {
			return errors.New("dead-letter payload mismatch")
		}
		if body.Error.Message != "projection failed" || body.FailedAt == "" {
			return errors.New("dead-letter error mismatch")
		}
		return nil
	})

	sleeps := &recordedSleeps{}
	sub := messaging.NewKafkaSubscriber(nil, dlq, messaging.SubscriberConfig{
		GroupID:         "readers",
		DeadLetterTopic: "article-events-dead-letter",
		MaxRetries:      2,
		RetryDelay:      time.Millisecond,
	}).WithSleep(sleeps.sleep)

	calls := 0
	ok := sub.HandleMessage(context.Background(), msg, func(context.Context, domain.Event) error {
		calls++
		return errors.New("projection failed")
	})

	assert.True(t, ok)
	assert.Equal(t, 2, calls)
	assert.Len(t, sleeps.delays, 1)
	require.NoError(t, dlq.Close())
}

func TestKafkaSubscriber_InvalidPayloadIsDeadLettered(t *testing.T) {
	dlq := mocks.NewSyncProducer(t, nil)
	dlq.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(out *sarama.ProducerMessage) error {
		value, err := out.Value.Encode()
		if err != nil {
			return err
		}
		var body messaging.DeadLetterMessage
		if err := json.Unmarshal(value, &body); err != nil {
			return err
		}
		if body.Error.Name != "InvalidPayloadError" {
			return errors.New("unexpected error name " + body.Error.Name)
		}
		return nil
	})

	sleeps := &recordedSleeps{}
	sub := messaging.NewKafkaSubscriber(nil, dlq, messaging.SubscriberConfig{
		DeadLetterTopic: "dlq",
		MaxRetries:      1,
	}).WithSleep(sleeps.sleep)

	handled := false
	ok := sub.HandleMessage(context.Background(), &sarama.ConsumerMessage{Topic: "article-events", Value: []byte("not json")},
		func(context.Context, domain.Event) error {
			handled = true
			return nil
		})

	assert.True(t, ok)
	assert.False(t, handled)
	require.NoError(t, dlq.Close())
}

func TestKafkaSubscriber_NoDeadLetterProducerStillSettles(t *testing.T) {
	sub := messaging.NewKafkaSubscriber(nil, nil, messaging.SubscriberConfig{MaxRetries: 1})

	ok := sub.HandleMessage(context.Background(), encodedMessage(t, newCreatedEvent(t)), func(context.Context, domain.Event) error {
		return errors.New("boom")
	})

	assert.True(t, ok)
}

func TestKafkaSubscriber_CancelledDuringBackoff(t *testing.T) {
	sub := messaging.NewKafkaSubscriber(nil, nil, messaging.SubscriberConfig{MaxRetries: 5}).
		WithSleep(func(ctx context.Context, _ time.Duration) error { return context.Canceled })

	ok := sub.HandleMessage(context.Background(), encodedMessage(t, newCreatedEvent(t)), func(context.Context, domain.Event) error {
		return errors.New("boom")
	})

	assert.False(t, ok)
}

func TestKafkaSubscriber_Backoff(t *testing.T) {
	sub := messaging.NewKafkaSubscriber(nil, nil, messaging.SubscriberConfig{RetryDelay: 500 * time.Millisecond})

	assert.Equal(t, 500*time.Millisecond, sub.Backoff(1))
	assert.Equal(t, time.Second, sub.Backoff(2))
	assert.Equal(t, 2*time.Second, sub.Backoff(3))
}

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumerGroupHandler_ConsumeClaimMarksMessages(t *testing.T) {
	first := encodedMessage(t, newCreatedEvent(t))
	first.Offset = 1
	second := encodedMessage(t, newCreatedEvent(t))
	second.Offset = 2

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 2)}
	claim.messages <- first
	claim.messages <- second
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	sub := messaging.NewKafkaSubscriber(nil, nil, messaging.SubscriberConfig{})

	var seen []domain.ArticleID
	handler := sub.NewConsumerGroupHandler(func(_ context.Context, e domain.Event) error {
		seen = append(seen, e.ArticleID)
		return nil
	})

	require.NoError(t, handler.Setup(session))
	require.NoError(t, handler.ConsumeClaim(session, claim))
	require.NoError(t, handler.Cleanup(session))

	assert.Equal(t, []int64{1, 2}, session.marked)
	assert.Len(t, seen, 2)
}

func TestConsumerGroupHandler_StopsOnSessionEnd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}
	session := &fakeSession{ctx: ctx}
	sub := messaging.NewKafkaSubscriber(nil, nil, messaging.SubscriberConfig{})

	handler := sub.NewConsumerGroupHandler(func(context.Context, domain.Event) error { return nil })
	require.NoError(t, handler.ConsumeClaim(session, claim))
	assert.Empty(t, session.marked)
}

type fakeGroup struct {
	sarama.ConsumerGroup
	messages []*sarama.ConsumerMessage
	session  *fakeSession
	cancel   context.CancelFunc
	errs     chan error
	topics   []string
	closed   bool
}

func (g *fakeGroup) Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	g.topics = topics
	g.session = &fakeSession{ctx: ctx}
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, len(g.messages))}
	for _, m := range g.messages {
		claim.messages <- m
	}
	close(claim.messages)

	if err := handler.Setup(g.session); err != nil {
		return err
	}
	err := handler.ConsumeClaim(g.session, claim)
	_ = handler.Cleanup(g.session)
	g.cancel()
	return err
}

func (g *fakeGroup) Errors() <-chan error { return g.errs }

func (g *fakeGroup) Close() error {
	g.closed = true
	close(g.errs)
	return nil
}

func TestKafkaSubscriber_Subscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := newCreatedEvent(t)
	group := &fakeGroup{
		messages: []*sarama.ConsumerMessage{encodedMessage(t, event)},
		cancel:   cancel,
		errs:     make(chan error),
	}

	sub := messaging.NewKafkaSubscriber(group, nil, messaging.SubscriberConfig{Topic: "article-events"})

	var received []domain.Event
	err := sub.Subscribe(ctx, func(_ context.Context, e domain.Event) error {
		received = append(received, e)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"article-events"}, group.topics)
	require.Len(t, received, 1)
	assert.True(t, received[0].Equal(event))
	assert.Equal(t, []int64{41}, group.session.marked)

	require.NoError(t, sub.Close())
	assert.True(t, group.closed)
}
