package middleware

import (
	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// Sentry attaches a per-request hub and tags it with the correlation ID.
// It must run after CorrelationID. Panics are re-raised for Recovery.
func Sentry() gin.HandlerFunc {
	capture := sentrygin.New(sentrygin.Options{Repanic: true})
	return func(c *gin.Context) {
		if sentry.CurrentHub().Client() == nil {
			c.Next()
			return
		}
		capture(c)
	}
}

// SentryScope copies request metadata onto the hub's scope
func SentryScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.Scope().SetTag("correlation_id", GetCorrelationID(c))
			hub.Scope().SetTag("language", GetLanguage(c))
		}
		c.Next()
	}
}
