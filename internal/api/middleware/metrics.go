package middleware

import (
	"time"

	"dispatch-portal-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records one observation per handled request. The route label
// uses the matched route pattern, not the raw path, so label cardinality
// stays bounded.
func Metrics(sink metrics.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		sink.RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
