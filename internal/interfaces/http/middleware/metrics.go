package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"velora.backend/pkg/metrics"
)

// MetricsMiddleware records request counts and latencies per route. The route
// template (e.g. /api/v1/products/:id) is used as the path label so ids do
// not explode label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		if metrics.HTTPRequestsTotal == nil {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
