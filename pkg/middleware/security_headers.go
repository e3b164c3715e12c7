package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// contentSecurityPolicy allows the Google Identity Services button, the
// embedded map on the contact footer, and listing photos served over https.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' https://accounts.google.com/gsi/client",
	"style-src 'self' 'unsafe-inline' https://accounts.google.com/gsi/style",
	"img-src 'self' data: https:",
	"font-src 'self'",
	"connect-src 'self' https://accounts.google.com/gsi/",
	"frame-src https://accounts.google.com/gsi/ https://www.google.com/maps/",
	"frame-ancestors 'none'",
}, "; ")

// SecurityHeaders adds security-related HTTP headers to responses
func SecurityHeaders(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")

		if production {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		h.Set("Content-Security-Policy", contentSecurityPolicy)
		// The Google sign-in popup needs the opener relationship kept.
		h.Set("Cross-Origin-Opener-Policy", "same-origin-allow-popups")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=(), usb=()")

		c.Next()
	}
}
