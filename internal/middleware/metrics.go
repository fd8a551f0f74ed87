package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// HTTPMetrics records request counts and latency per matched route.
func HTTPMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
