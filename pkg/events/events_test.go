package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	subject string
	data    []byte
	err     error
	drained bool
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	f.subject, f.data = subject, data
	return f.err
}

func (f *fakeConn) Drain() error {
	f.drained = true
	return nil
}

func TestNATSPublisher_Publish(t *testing.T) {
	conn := &fakeConn{}
	p := &NATSPublisher{conn: conn}

	err := p.Publish(context.Background(), PropertyCreated, map[string]string{"id": "abc"})
	require.NoError(t, err)

	assert.Equal(t, "realty.property.created", conn.subject)

	var env Envelope
	require.NoError(t, json.Unmarshal(conn.data, &env))
	assert.Equal(t, PropertyCreated, env.Type)
	assert.NotEmpty(t, env.ID)
	assert.False(t, env.OccurredAt.IsZero())
	assert.JSONEq(t, `{"id":"abc"}`, string(env.Data))

	p.Close()
	assert.True(t, conn.drained)
}

func TestNATSPublisher_PublishError(t *testing.T) {
	p := &NATSPublisher{conn: &fakeConn{err: errors.New("nats: connection closed")}}

	err := p.Publish(context.Background(), PropertyDeleted, struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property.deleted")
}

func TestNewEnvelope_Unencodable(t *testing.T) {
	_, err := NewEnvelope(PropertyUpdated, make(chan int))
	assert.Error(t, err)
}

func TestNew_DisabledIsNoop(t *testing.T) {
	p, err := New(config.NATSConfig{Enabled: false}, "realty")
	require.NoError(t, err)
	assert.IsType(t, NoopPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), LeadReceived, nil))
	p.Close()
}
