// internal/middleware/logging.go
package middleware

import (
	"loan-catalog/internal/metrics"
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request through slog and, when m is not nil,
// records it in the request metrics.
func RequestLogger(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		attrs := []any{
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", elapsed,
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= 500:
			slog.Error("Request failed", attrs...)
		case status >= 400:
			slog.Warn("Request rejected", attrs...)
		default:
			slog.Info("Request served", attrs...)
		}

		if m != nil {
			m.ObserveRequest(c.Request.Method, route, strconv.Itoa(status), elapsed.Seconds())
		}
	}
}
