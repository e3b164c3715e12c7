package tracing

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/leandrocorretor/realty/pkg/logger"
	"go.uber.org/zap"
)

// InitSentry configures the global Sentry client. An empty DSN leaves
// error reporting off and returns a no-op flush.
func InitSentry(serviceName, environment string, cfg config.SentryConfig) (func(), error) {
	if cfg.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      environment,
		ServerName:       serviceName,
		SampleRate:       cfg.SampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init sentry: %w", err)
	}

	logger.Info("Sentry enabled", zap.String("environment", environment))

	return func() { sentry.Flush(2 * time.Second) }, nil
}
