// Command resync-readmodel rebuilds the Redis read model from the event
// store. It runs once, or on RESYNC_INTERVAL when that is set.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"blog-article-service/internal/config"
	"blog-article-service/internal/infrastructure/cache"
	"blog-article-service/internal/infrastructure/database"
	"blog-article-service/internal/logger"
	"blog-article-service/internal/readmodel"
	"blog-article-service/internal/repository"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", slog.String("error", err.Error()))
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", slog.String("error", err.Error()))
		return 1
	}
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPostgres(ctx, database.PoolConfigFrom(cfg))
	if err != nil {
		logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		return 1
	}
	defer pool.Close()

	rdb, err := cache.NewRedis(ctx, cache.RedisConfigFrom(cfg))
	if err != nil {
		logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
		return 1
	}
	defer rdb.Close()

	resync := readmodel.NewResynchronizer(
		rdb,
		repository.NewPostgresArticleEventRepository(pool, cfg.KafkaTopic),
		readmodel.NewSynchronizer(rdb),
	)

	if cfg.ResyncInterval > 0 {
		if err := resync.RunEvery(ctx, cfg.ResyncInterval); err != nil {
			logger.Error("Scheduled resync stopped", slog.String("error", err.Error()))
			return 1
		}
		logger.Info("Resync scheduler exited")
		return 0
	}

	if _, err := resync.Rebuild(ctx); err != nil {
		logger.Error("Failed to resynchronize read model", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
