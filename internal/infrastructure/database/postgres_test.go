package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-article-service/internal/config"
)

func TestPoolConfigFrom(t *testing.T) {
	cfg := &config.Config{
		DBHost:              "db",
		DBPort:              5433,
		DBUser:              "articles",
		DBPassword:          "secret",
		DBName:              "blog",
		DBSSLMode:           "disable",
		DBMaxConns:          10,
		DBMinConns:          2,
		DBMaxConnLifetime:   time.Hour,
		DBMaxConnIdleTime:   time.Minute,
		DBHealthCheckPeriod: 30 * time.Second,
	}

	pc := PoolConfigFrom(cfg)

	assert.Equal(t, int32(10), pc.MaxConns)
	assert.Equal(t, 30*time.Second, pc.HealthCheckPeriod)
	assert.Equal(t, "host=db port=5433 user=articles password=secret dbname=blog sslmode=disable", pc.DSN())
}

func TestNewPostgres_InvalidSSLMode(t *testing.T) {
	_, err := NewPostgres(context.Background(), PoolConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "u",
		Database: "d",
		SSLMode:  "bogus",
		MaxConns: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
