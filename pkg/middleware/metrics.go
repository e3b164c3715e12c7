package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route, surface and status",
		},
		[]string{"service", "surface", "method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request latency",
			// pages render templates and photo uploads run long; widen the tail
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"service", "surface", "method", "route"},
	)

	httpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Requests currently being served",
		},
		[]string{"service"},
	)
)

// surface groups routes for dashboards: the JSON API, rendered pages,
// uploaded media and operational probes.
func surface(route string) string {
	switch {
	case strings.HasPrefix(route, "/api/"):
		return "api"
	case strings.HasPrefix(route, "/media"):
		return "media"
	case route == "/healthz" || route == "/readyz" || route == "/metrics":
		return "ops"
	default:
		return "page"
	}
}

// Metrics records request counts, latency and in-flight requests
func Metrics(serviceName string) gin.HandlerFunc {
	inFlight := httpRequestsInFlight.WithLabelValues(serviceName)
	return func(c *gin.Context) {
		start := time.Now()
		inFlight.Inc()
		defer inFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		kind := surface(c.Request.URL.Path)

		httpRequestsTotal.WithLabelValues(serviceName, kind, c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(serviceName, kind, c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
