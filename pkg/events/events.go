// Package events publishes listing lifecycle events for downstream consumers
// such as search indexers or notification workers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// SubjectPrefix is prepended to every event type to form the NATS subject
const SubjectPrefix = "realty."

// Event types
const (
	PropertyCreated = "property.created"
	PropertyUpdated = "property.updated"
	PropertyDeleted = "property.deleted"
	LeadReceived    = "lead.received"
)

// Envelope is the JSON body of every published message
type Envelope struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

// Publisher publishes domain events
type Publisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
	Close()
}

// NewEnvelope wraps data for publishing
func NewEnvelope(eventType string, data interface{}) (*Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", eventType, err)
	}
	return &Envelope{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       raw,
	}, nil
}

// Subject returns the NATS subject for eventType
func Subject(eventType string) string {
	return SubjectPrefix + eventType
}

type natsConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSPublisher publishes envelopes on core NATS subjects
type NATSPublisher struct {
	conn natsConn
}

// NewNATSPublisher connects to the configured server
func NewNATSPublisher(cfg config.NATSConfig, serviceName string) (*NATSPublisher, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Name(serviceName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

// Publish sends the event; delivery is at-most-once
func (p *NATSPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	env, err := NewEnvelope(eventType, data)
	if err != nil {
		return err
	}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	if err := p.conn.Publish(Subject(eventType), body); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	logger.WithContext(ctx).Debug("Event published", zap.String("type", eventType), zap.String("event_id", env.ID))
	return nil
}

// Close drains pending messages and closes the connection
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		logger.Warn("NATS drain failed", zap.Error(err))
	}
}

// NoopPublisher discards events
type NoopPublisher struct{}

// Publish implements Publisher
func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// Close implements Publisher
func (NoopPublisher) Close() {}

// New returns a NATS publisher when enabled and a no-op publisher otherwise
func New(cfg config.NATSConfig, serviceName string) (Publisher, error) {
	if !cfg.Enabled {
		return NoopPublisher{}, nil
	}
	return NewNATSPublisher(cfg, serviceName)
}
