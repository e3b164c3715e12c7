package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/leandrocorretor/realty/pkg/logger"
)

var retryAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "retry_attempts_total",
	Help: "Total number of retried operations by outcome",
}, []string{"operation", "outcome"})

// ErrPermanent marks an error that must never be retried.
var ErrPermanent = errors.New("permanent failure")

// Operation is a unit of work passed to Retry.
type Operation func(ctx context.Context) (interface{}, error)

// RetryConfig controls the backoff policy used by Retry.
type RetryConfig struct {
	Name              string
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
	EnableJitter      bool

	// RetryableErrors restricts retries to these errors when non-empty.
	RetryableErrors []error
	// RetryableChecker overrides RetryableErrors when set.
	RetryableChecker func(err error) bool
}

// DefaultRetryConfig returns the policy used for outbound calls.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Name:              "default",
		MaxAttempts:       3,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
		EnableJitter:      true,
	}
}

// QuickRetryConfig is meant for request-path calls that should not hold a handler for long.
func QuickRetryConfig() RetryConfig {
	return RetryConfig{
		Name:              "quick",
		MaxAttempts:       3,
		InitialBackoff:    200 * time.Millisecond,
		MaxBackoff:        2 * time.Second,
		BackoffMultiplier: 2.0,
		EnableJitter:      true,
	}
}

// Retry runs op until it succeeds, returns a non-retryable error, runs out of
// attempts or ctx is done. The last error is returned unchanged.
func Retry(ctx context.Context, config RetryConfig, op Operation) (interface{}, error) {
	attempts := config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, err
		}

		result, err := op(ctx)
		if err == nil {
			if attempt > 1 {
				retryAttemptsTotal.WithLabelValues(config.Name, "recovered").Inc()
			}
			return result, nil
		}
		lastErr = err

		if attempt == attempts || !shouldRetry(err, config) {
			break
		}

		backoff := calculateBackoff(attempt, config)
		logger.WithContext(ctx).Debug("retrying operation",
			zap.String("operation", config.Name),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			retryAttemptsTotal.WithLabelValues(config.Name, "canceled").Inc()
			return nil, lastErr
		case <-timer.C:
		}
	}

	retryAttemptsTotal.WithLabelValues(config.Name, "exhausted").Inc()
	return nil, lastErr
}

func shouldRetry(err error, config RetryConfig) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrPermanent) {
		return false
	}
	if config.RetryableChecker != nil {
		return config.RetryableChecker(err)
	}
	if len(config.RetryableErrors) == 0 {
		return true
	}
	for _, target := range config.RetryableErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func calculateBackoff(attempt int, config RetryConfig) time.Duration {
	multiplier := config.BackoffMultiplier
	if multiplier <= 0 {
		multiplier = 2.0
	}
	backoff := float64(config.InitialBackoff) * math.Pow(multiplier, float64(attempt-1))
	if config.MaxBackoff > 0 && backoff > float64(config.MaxBackoff) {
		backoff = float64(config.MaxBackoff)
	}

	d := time.Duration(backoff)
	if config.EnableJitter {
		d = addJitter(d)
	}
	return d
}

// addJitter picks a uniformly random duration in [0, d].
func addJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(d) + 1))
}

// IsRetryableHTTPStatus reports whether a response status is worth retrying.
func IsRetryableHTTPStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return status >= 500
}
