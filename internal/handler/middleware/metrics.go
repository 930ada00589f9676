package middleware

import (
	"time"

	"nagoyameshi/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency labelled by route template so
// path parameters do not explode label cardinality.
func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		reg.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
