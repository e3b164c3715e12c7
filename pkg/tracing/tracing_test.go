package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), "realty", "test", config.TracingConfig{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestRecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := tp.Tracer("test").Start(context.Background(), "PropertyService.AddProperty")
	RecordError(span, nil)
	RecordError(span, errors.New("insert failed"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "insert failed", spans[0].Status().Description)
	assert.Len(t, spans[0].Events(), 1)
}

func TestInitSentry(t *testing.T) {
	flush, err := InitSentry("realty", "test", config.SentryConfig{})
	require.NoError(t, err)
	assert.NotPanics(t, flush)

	_, err = InitSentry("realty", "test", config.SentryConfig{DSN: "not a dsn"})
	assert.Error(t, err)
}
