package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HTTPObserver records per-route request metrics.
type HTTPObserver interface {
	ObserveHTTP(route, status string, seconds float64)
}

// Logger logs one line per request and feeds the observer, if any.
// Routes are labeled by their pattern (e.g. /api/v1/reports/:id/pdf), not the raw path.
func Logger(logger zerolog.Logger, observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		ev := logger.Info()
		if status >= 500 {
			ev = logger.Error()
		} else if status >= 400 {
			ev = logger.Warn()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("request")

		if observer != nil {
			observer.ObserveHTTP(route, strconv.Itoa(status), elapsed.Seconds())
		}
	}
}
