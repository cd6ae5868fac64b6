package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiqn/dispatch_engine/internal/models"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func newFakeToken(err error, completed bool) *fakeToken {
	tok := &fakeToken{done: make(chan struct{}), err: err}
	if completed {
		close(tok.done)
	}
	return tok
}

func (t *fakeToken) Wait() bool                     { <-t.done; return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type fakeMQTTClient struct {
	mqtt.Client
	topic   string
	qos     byte
	payload []byte
	token   *fakeToken
}

func (c *fakeMQTTClient) Publish(topic string, qos byte, _ bool, payload interface{}) mqtt.Token {
	c.topic = topic
	c.qos = qos
	c.payload = payload.([]byte)
	return c.token
}

func TestMQTTPublisher_Publish(t *testing.T) {
	client := &fakeMQTTClient{token: newFakeToken(nil, true)}
	pub := newMQTTPublisher(client)
	event := models.ChangeEvent{Entity: models.EntityAssignment, ID: "a-42", Op: models.OpUpdated, At: time.Now().UTC()}

	err := pub.Publish(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, "tiqn/changes/assignment/a-42", client.topic)
	assert.Equal(t, byte(1), client.qos)
	var decoded models.ChangeEvent
	require.NoError(t, json.Unmarshal(client.payload, &decoded))
	assert.Equal(t, "a-42", decoded.ID)
}

func TestMQTTPublisher_BrokerError(t *testing.T) {
	client := &fakeMQTTClient{token: newFakeToken(errors.New("not connected"), true)}
	pub := newMQTTPublisher(client)

	err := pub.Publish(context.Background(), models.ChangeEvent{Entity: models.EntityIncident, ID: "i-1"})

	assert.ErrorContains(t, err, "not connected")
}

func TestMQTTPublisher_ContextCancelled(t *testing.T) {
	client := &fakeMQTTClient{token: newFakeToken(nil, false)}
	pub := newMQTTPublisher(client)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pub.Publish(ctx, models.ChangeEvent{Entity: models.EntityIncident, ID: "i-1"})

	assert.ErrorIs(t, err, context.Canceled)
}
