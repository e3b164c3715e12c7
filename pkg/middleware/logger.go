package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leandrocorretor/realty/pkg/logger"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests. Static assets and probes are logged at debug level.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.Int("size", c.Writer.Size()),
		}

		reqLogger := logger.WithContext(c.Request.Context())

		switch {
		case len(c.Errors) > 0:
			reqLogger.Error("Request completed with errors", append(fields, zap.String("errors", c.Errors.String()))...)
		case isQuietPath(path):
			reqLogger.Debug("Request completed", fields...)
		default:
			reqLogger.Info("Request completed", fields...)
		}
	}
}

func isQuietPath(path string) bool {
	return path == "/healthz" || path == "/metrics" ||
		strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/media/")
}
