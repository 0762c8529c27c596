package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinger(err error) Pinger {
	return PingFunc(func(context.Context) error { return err })
}

func healthRouter(db, cache Pinger) *gin.Engine {
	h := NewHealthHandler(db, cache)
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("all dependencies healthy", func(t *testing.T) {
		w := get(healthRouter(pinger(nil), pinger(nil)), "/health")

		require.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, ServiceVersion, resp.Version)
		assert.Equal(t, map[string]string{"database": "healthy", "redis": "healthy"}, resp.Services)
	})

	t.Run("redis down", func(t *testing.T) {
		w := get(healthRouter(pinger(nil), pinger(errors.New("refused"))), "/health")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "healthy", resp.Services["database"])
		assert.Equal(t, "unhealthy", resp.Services["redis"])
	})
}

func TestHealthHandler_Ready(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(healthRouter(pinger(nil), pinger(nil)), "/ready").Code)
	assert.Equal(t, http.StatusServiceUnavailable,
		get(healthRouter(pinger(errors.New("down")), pinger(nil)), "/ready").Code)
}

func TestHealthHandler_Live(t *testing.T) {
	w := get(healthRouter(pinger(errors.New("down")), pinger(errors.New("down"))), "/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}
