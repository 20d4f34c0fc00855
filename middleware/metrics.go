package middleware

import (
	"strconv"
	"time"

	"lexconnect/metrics"

	"github.com/gin-gonic/gin"
)

// PrometheusMetrics records request counts and latency by route template.
func PrometheusMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
