package middleware

import (
	"time"

	"hospital-registry-service/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latencies for every completed request.
// Requests are labeled by the matched route pattern, not the raw URL, to
// keep metric cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
