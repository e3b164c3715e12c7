package ratelimit

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Result describes the outcome of a single Allow call
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
	ResetAt    time.Time
}

// Limiter is a fixed-window counter keyed by scope and client identity.
// Counters live in Redis so every replica shares the same budget.
type Limiter struct {
	client *redis.Client
	cfg    config.RateLimitConfig
	now    func() time.Time
}

// NewLimiter creates a limiter backed by the given Redis client
func NewLimiter(client *redis.Client, cfg config.RateLimitConfig) *Limiter {
	if cfg.RedisPrefix == "" {
		cfg.RedisPrefix = "rl"
	}
	return &Limiter{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Enabled reports whether requests are actually counted
func (l *Limiter) Enabled() bool {
	return l != nil && l.cfg.Enabled && l.cfg.Limit > 0 && l.client != nil
}

func (l *Limiter) key(scope, identity string, bucket int64) string {
	return fmt.Sprintf("%s:%s:%s:%d", l.cfg.RedisPrefix, scope, identity, bucket)
}

// Allow counts one request for identity within scope
func (l *Limiter) Allow(ctx context.Context, scope, identity string) (*Result, error) {
	if !l.Enabled() {
		return &Result{Allowed: true, Limit: l.cfg.Limit, Remaining: l.cfg.Limit}, nil
	}

	window := l.cfg.Window()
	windowSecs := int64(window / time.Second)
	now := l.now()
	bucket := now.Unix() / windowSecs
	resetAt := time.Unix((bucket+1)*windowSecs, 0)
	key := l.key(scope, identity, bucket)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("rate limit incr: %w", err)
	}
	if count == 1 {
		// first hit of the window owns the expiry
		if err := l.client.Expire(ctx, key, window).Err(); err != nil {
			return nil, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	remaining := l.cfg.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	res := &Result{
		Allowed:   count <= int64(l.cfg.Limit),
		Limit:     l.cfg.Limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
	if !res.Allowed {
		res.RetryAfter = resetAt.Sub(now)
	}
	return res, nil
}

// Middleware throttles the route by client IP. Redis failures let the request through.
func Middleware(l *Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Enabled() {
			c.Next()
			return
		}

		res, err := l.Allow(c.Request.Context(), scope, c.ClientIP())
		if err != nil {
			logger.WithContext(c.Request.Context()).Warn("rate limiter unavailable",
				zap.String("scope", scope),
				zap.Error(err),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

		if res.Allowed {
			c.Next()
			return
		}

		retry := int(math.Ceil(res.RetryAfter.Seconds()))
		if retry < 1 {
			retry = 1
		}
		c.Header("Retry-After", strconv.Itoa(retry))

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			common.ErrorResponse(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}
		c.Abort()
		c.String(http.StatusTooManyRequests, "Too many requests, try again in %d seconds.", retry)
	}
}

// ForRoutes applies Middleware only to the listed "METHOD /path" routes,
// all of them sharing one budget under scope.
func ForRoutes(l *Limiter, scope string, routes ...string) gin.HandlerFunc {
	limited := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		limited[r] = struct{}{}
	}
	throttle := Middleware(l, scope)
	return func(c *gin.Context) {
		if _, ok := limited[c.Request.Method+" "+c.Request.URL.Path]; !ok {
			c.Next()
			return
		}
		throttle(c)
	}
}
