package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-article-service/internal/config"
	"blog-article-service/internal/handler"
	"blog-article-service/internal/infrastructure/cache"
	"blog-article-service/internal/infrastructure/database"
	"blog-article-service/internal/logger"
	"blog-article-service/internal/metrics"
	"blog-article-service/internal/middleware"
	"blog-article-service/internal/readmodel"
	"blog-article-service/internal/repository"
	"blog-article-service/internal/service"
	"blog-article-service/internal/validator"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", slog.String("error", err.Error()))
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	ctx := context.Background()

	pool, err := database.NewPostgres(ctx, database.PoolConfigFrom(cfg))
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	rdb, err := cache.NewRedis(ctx, cache.RedisConfigFrom(cfg))
	if err != nil {
		logger.Fatal("Failed to connect to redis",
			slog.String("error", err.Error()))
	}
	defer rdb.Close()

	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	eventRepo := repository.NewPostgresArticleEventRepository(pool, cfg.KafkaTopic)
	articleService := service.NewArticleService(eventRepo, readmodel.NewQuery(rdb))

	articleHandler := handler.NewArticleHandler(articleService, validator.NewValidator())
	healthHandler := handler.NewHealthHandler(pool, handler.PingFunc(func(ctx context.Context) error {
		return cache.HealthCheck(ctx, rdb)
	}))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	articleHandler.RegisterRoutes(router.Group(handler.APIPrefix))

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
