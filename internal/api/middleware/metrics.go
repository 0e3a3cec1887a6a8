package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fct/internal/metrics"
)

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		metrics.HTTPResponseSize.WithLabelValues(c.Request.Method, path).Observe(float64(max(c.Writer.Size(), 0)))
	}
}
