package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// APITimeout gives JSON API requests a deadline of d on the request context.
// The handler keeps running on the request goroutine; pgx, Redis and the SDK
// clients abort once the deadline passes and common.HandleError answers 504.
// Page routes are left alone because photo uploads can take longer.
func APITimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 || !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
