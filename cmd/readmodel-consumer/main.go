// Command readmodel-consumer projects article events from Kafka into Redis.
package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/IBM/sarama"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"blog-article-service/internal/config"
	"blog-article-service/internal/infrastructure/cache"
	"blog-article-service/internal/infrastructure/kafka"
	"blog-article-service/internal/logger"
	"blog-article-service/internal/messaging"
	"blog-article-service/internal/metrics"
	"blog-article-service/internal/readmodel"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", slog.String("error", err.Error()))
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := cache.NewRedis(ctx, cache.RedisConfigFrom(cfg))
	if err != nil {
		logger.Fatal("Failed to connect to redis", slog.String("error", err.Error()))
	}
	defer rdb.Close()

	saramaCfg := kafka.NewConfig(cfg.KafkaClientID + "-readmodel")

	if err := ensureTopics(cfg, kafka.NewConfig(cfg.KafkaClientID+"-admin")); err != nil {
		logger.Fatal("Failed to provision Kafka topics", slog.String("error", err.Error()))
	}

	group, err := kafka.NewConsumerGroup(cfg.KafkaBrokers, cfg.KafkaConsumerGroup, saramaCfg)
	if err != nil {
		logger.Fatal("Failed to create Kafka consumer group", slog.String("error", err.Error()))
	}

	deadLetter, err := kafka.NewSyncProducer(cfg.KafkaBrokers, saramaCfg)
	if err != nil {
		logger.Fatal("Failed to create dead-letter producer", slog.String("error", err.Error()))
	}

	subscriber := messaging.NewKafkaSubscriber(group, deadLetter, messaging.SubscriberConfig{
		Topic:           cfg.KafkaTopic,
		GroupID:         cfg.KafkaConsumerGroup,
		DeadLetterTopic: cfg.KafkaDeadLetterTopic,
		MaxRetries:      cfg.KafkaMaxRetries,
		RetryDelay:      cfg.KafkaRetryDelay,
	})
	synchronizer := readmodel.NewSynchronizer(rdb)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return subscriber.Subscribe(gctx, synchronizer.Apply)
	})
	g.Go(func() error {
		return metrics.Serve(gctx, ":"+cfg.MetricsPort)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Read-model consumer stopped with error", slog.String("error", err.Error()))
	}

	if err := subscriber.Close(); err != nil {
		logger.Error("Failed to close Kafka subscriber", slog.String("error", err.Error()))
	}
	logger.Info("Read-model consumer exited")
}

func ensureTopics(cfg *config.Config, adminCfg *sarama.Config) error {
	admin, err := kafka.NewClusterAdmin(cfg.KafkaBrokers, adminCfg)
	if err != nil {
		return err
	}
	defer admin.Close()

	specs := []kafka.TopicSpec{{
		Name:              cfg.KafkaTopic,
		Partitions:        cfg.KafkaTopicPartitions,
		ReplicationFactor: cfg.KafkaReplicationFactor,
	}}
	if cfg.KafkaDeadLetterTopic != "" {
		specs = append(specs, kafka.TopicSpec{
			Name:              cfg.KafkaDeadLetterTopic,
			Partitions:        cfg.KafkaTopicPartitions,
			ReplicationFactor: cfg.KafkaReplicationFactor,
		})
	}
	return kafka.EnsureTopics(admin, specs)
}
