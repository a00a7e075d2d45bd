package middleware

import (
	"strconv"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

// Metrics records request counts and latencies by route template, so ids in
// paths do not explode label cardinality.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}
