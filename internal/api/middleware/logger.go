package middleware

import (
	"time"

	"regime-dashboard/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request. Server errors are logged at error
// level, client errors at warn.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			logger.Error(ctx, "Request failed", fields...)
		case status >= 400:
			logger.Warn(ctx, "Request rejected", fields...)
		default:
			logger.Info(ctx, "Request handled", fields...)
		}
	}
}
