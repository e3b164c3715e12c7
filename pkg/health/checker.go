package health

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Checker is a single dependency probe
type Checker func() error

// CheckerConfig holds probe settings
type CheckerConfig struct {
	Timeout time.Duration
}

// DefaultCheckerConfig returns the default probe settings
func DefaultCheckerConfig() CheckerConfig {
	return CheckerConfig{Timeout: 2 * time.Second}
}

// Pinger is anything that can be pinged with a context, such as a pgxpool.Pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatabaseChecker returns a health check function for a database/sql handle
func DatabaseChecker(db *sql.DB) Checker {
	return DatabaseCheckerWithConfig(db, DefaultCheckerConfig())
}

// DatabaseCheckerWithConfig is DatabaseChecker with a custom timeout
func DatabaseCheckerWithConfig(db *sql.DB, config CheckerConfig) Checker {
	return func() error {
		if db == nil {
			return errors.New("database connection is nil")
		}
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		defer cancel()
		return db.PingContext(ctx)
	}
}

// PingChecker returns a health check function for a pgx pool or similar
func PingChecker(name string, p Pinger) Checker {
	return func() error {
		if p == nil {
			return fmt.Errorf("%s connection is nil", name)
		}
		ctx, cancel := context.WithTimeout(context.Background(), DefaultCheckerConfig().Timeout)
		defer cancel()
		return p.Ping(ctx)
	}
}

// RedisChecker returns a health check function for Redis
func RedisChecker(client *redis.Client) Checker {
	return func() error {
		if client == nil {
			return errors.New("redis client is nil")
		}
		ctx, cancel := context.WithTimeout(context.Background(), DefaultCheckerConfig().Timeout)
		defer cancel()
		return client.Ping(ctx).Err()
	}
}

// CompositeChecker runs every checker and joins failures as "<name>.<check>: err"
func CompositeChecker(name string, checkers map[string]Checker) Checker {
	return func() error {
		keys := make([]string, 0, len(checkers))
		for k := range checkers {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var failures []string
		for _, k := range keys {
			if err := checkers[k](); err != nil {
				failures = append(failures, fmt.Sprintf("%s.%s: %v", name, k, err))
			}
		}
		if len(failures) > 0 {
			return errors.New(strings.Join(failures, "; "))
		}
		return nil
	}
}

// CachedChecker memoizes a checker result for cacheTTL
type CachedChecker struct {
	checker  Checker
	cacheTTL time.Duration

	mu        sync.Mutex
	lastErr   error
	checkedAt time.Time
}

// NewCachedChecker wraps checker with a result cache
func NewCachedChecker(checker Checker, cacheTTL time.Duration) *CachedChecker {
	return &CachedChecker{checker: checker, cacheTTL: cacheTTL}
}

// Check returns the cached result, refreshing it once the TTL has passed
func (c *CachedChecker) Check() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.checkedAt.IsZero() && time.Since(c.checkedAt) < c.cacheTTL {
		return c.lastErr
	}
	c.lastErr = c.checker()
	c.checkedAt = time.Now()
	return c.lastErr
}
