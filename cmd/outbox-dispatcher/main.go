// Command outbox-dispatcher relays pending outbox rows to Kafka.
package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"blog-article-service/internal/config"
	"blog-article-service/internal/infrastructure/database"
	"blog-article-service/internal/infrastructure/kafka"
	"blog-article-service/internal/logger"
	"blog-article-service/internal/messaging"
	"blog-article-service/internal/metrics"
	"blog-article-service/internal/outbox"
	"blog-article-service/internal/repository"
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

	pool, err := database.NewPostgres(ctx, database.PoolConfigFrom(cfg))
	if err != nil {
		logger.Fatal("Failed to connect to database", slog.String("error", err.Error()))
	}
	defer pool.Close()

	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	producer, err := kafka.NewSyncProducer(cfg.KafkaBrokers, kafka.NewConfig(cfg.KafkaClientID+"-outbox"))
	if err != nil {
		logger.Fatal("Failed to create Kafka producer", slog.String("error", err.Error()))
	}

	dispatcher := outbox.NewDispatcher(
		repository.NewPostgresOutboxRepository(pool),
		messaging.NewKafkaPublisher(producer, cfg.KafkaTopic),
		outbox.Config{
			Topic:       cfg.KafkaTopic,
			BatchSize:   cfg.OutboxBatchSize,
			RetryDelay:  cfg.OutboxRetryDelay,
			MaxAttempts: cfg.OutboxMaxAttempts,
		},
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dispatcher.Run(gctx, cfg.OutboxPollInterval)
	})
	g.Go(func() error {
		return metrics.Serve(gctx, ":"+cfg.MetricsPort)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Outbox dispatcher stopped with error", slog.String("error", err.Error()))
	}

	if err := dispatcher.Close(); err != nil {
		logger.Error("Failed to close Kafka producer", slog.String("error", err.Error()))
	}
	logger.Info("Outbox dispatcher exited")
}
