package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiqn/dispatch_engine/internal/models"
)

func receive(t *testing.T, ch <-chan models.ChangeEvent) models.ChangeEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return models.ChangeEvent{}
}

func TestBroker_FiltersByEntity(t *testing.T) {
	broker := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assignments, err := broker.Subscribe(ctx, models.EntityAssignment)
	require.NoError(t, err)
	all, err := broker.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, broker.Publish(ctx, models.ChangeEvent{Entity: models.EntityIncident, ID: "i-1", Op: models.OpUpdated}))
	require.NoError(t, broker.Publish(ctx, models.ChangeEvent{Entity: models.EntityAssignment, ID: "a-1", Op: models.OpCreated}))

	assert.Equal(t, "a-1", receive(t, assignments).ID)
	assert.Equal(t, "i-1", receive(t, all).ID)
	assert.Equal(t, "a-1", receive(t, all).ID)
}

func TestBroker_ClosesChannelOnCancel(t *testing.T) {
	broker := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := broker.Subscribe(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel was not closed")
	}

	// Публикация после отписки не паникует
	assert.NoError(t, broker.Publish(context.Background(), models.ChangeEvent{Entity: models.EntityRescuer}))
}

type failingPublisher struct{ err error }

func (f failingPublisher) Publish(context.Context, models.ChangeEvent) error { return f.err }

func TestMultiPublisher_JoinsErrors(t *testing.T) {
	broker := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := broker.Subscribe(ctx)
	require.NoError(t, err)

	boom := errors.New("broker down")
	multi := MultiPublisher{failingPublisher{err: boom}, broker}

	err = multi.Publish(ctx, models.ChangeEvent{Entity: models.EntityIncident, ID: "i-9"})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	// Остальные публикаторы все равно получают событие
	assert.Equal(t, "i-9", receive(t, ch).ID)
}
