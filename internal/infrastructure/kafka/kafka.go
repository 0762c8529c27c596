// Package kafka builds sarama clients for the article event topics.
package kafka

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"blog-article-service/internal/logger"
)

// TopicSpec describes a topic that must exist before consuming.
type TopicSpec struct {
	Name              string
	Partitions        int32
	ReplicationFactor int16
}

// NewConfig returns the sarama configuration shared by producers and
// consumer groups.
func NewConfig(clientID string) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Version = sarama.V3_6_0_0

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = true

	return cfg
}

// NewSyncProducer connects a synchronous producer.
func NewSyncProducer(brokers []string, cfg *sarama.Config) (sarama.SyncProducer, error) {
	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return producer, nil
}

// NewConsumerGroup joins groupID on the given brokers.
func NewConsumerGroup(brokers []string, groupID string, cfg *sarama.Config) (sarama.ConsumerGroup, error) {
	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer group: %w", err)
	}
	return group, nil
}

// NewClusterAdmin connects an admin client.
func NewClusterAdmin(brokers []string, cfg *sarama.Config) (sarama.ClusterAdmin, error) {
	admin, err := sarama.NewClusterAdmin(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka admin: %w", err)
	}
	return admin, nil
}

// EnsureTopics creates every topic in specs that the cluster does not
// already have.
func EnsureTopics(admin sarama.ClusterAdmin, specs []TopicSpec) error {
	existing, err := admin.ListTopics()
	if err != nil {
		return fmt.Errorf("list kafka topics: %w", err)
	}

	for _, spec := range specs {
		if spec.Name == "" {
			continue
		}
		if _, ok := existing[spec.Name]; ok {
			continue
		}

		partitions := spec.Partitions
		if partitions < 1 {
			partitions = 1
		}
		replication := spec.ReplicationFactor
		if replication < 1 {
			replication = 1
		}

		err := admin.CreateTopic(spec.Name, &sarama.TopicDetail{
			NumPartitions:     partitions,
			ReplicationFactor: replication,
		}, false)
		if err != nil && !isTopicExists(err) {
			return fmt.Errorf("create kafka topic %s: %w", spec.Name, err)
		}

		logger.Info("Kafka topic ensured",
			slog.String("topic", spec.Name),
			slog.Int("partitions", int(partitions)))
	}

	return nil
}

func isTopicExists(err error) bool {
	if errors.Is(err, sarama.ErrTopicAlreadyExists) {
		return true
	}
	var topicErr *sarama.TopicError
	return errors.As(err, &topicErr) && topicErr.Err == sarama.ErrTopicAlreadyExists
}
