// Package middleware provides the gin middleware shared by the article API.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blog-article-service/internal/metrics"
)

// unobservedPaths are scraped or probed too often to be worth recording.
var unobservedPaths = map[string]struct{}{
	"/metrics": {},
	"/live":    {},
}

// Metrics records request totals, latency and in-flight requests per
// route template, so /api/v1/articles/:id is one series for every id.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, skip := unobservedPaths[c.FullPath()]; skip {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
