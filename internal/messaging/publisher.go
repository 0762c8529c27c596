// Package messaging moves article events over Kafka.
package messaging

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/eventcodec"
)

// EventTypeHeader carries the event type alongside the JSON body.
const EventTypeHeader = "event-type"

// KafkaPublisher publishes article events keyed by article id, so every
// event of one article lands on the same partition.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	if topic == "" {
		topic = domain.DefaultEventTopic
	}
	return &KafkaPublisher{producer: producer, topic: topic}
}

// Publish serializes event and sends it as one message.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := eventcodec.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ArticleID.String()),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte(EventTypeHeader), Value: []byte(event.Type())},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send event to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
