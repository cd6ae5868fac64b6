package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiqn/dispatch_engine/internal/service"
)

func TestDispatchState_EmptyBeforeFirstWrite(t *testing.T) {
	env := newTestEnv(t, nil)

	state, err := env.dispatch.Get(context.Background())

	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Nil(t, state.ActiveDispatcherID)
	assert.Nil(t, state.ActiveIncidentID)
}

func TestDispatchState_SetAndClear(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	incidentID := uuid.New()

	require.NoError(t, env.dispatch.SetActiveDispatcher(ctx, "dispatcher-1"))
	require.NoError(t, env.dispatch.SetActiveIncident(ctx, &incidentID))

	state, err := env.dispatch.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dispatcher-1", *state.ActiveDispatcherID)
	assert.Equal(t, incidentID, *state.ActiveIncidentID)
	assert.False(t, state.UpdatedAt.IsZero())

	require.NoError(t, env.dispatch.SetActiveIncident(ctx, nil))
	state, err = env.dispatch.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, state.ActiveIncidentID)
	assert.Equal(t, "dispatcher-1", *state.ActiveDispatcherID)
}

func TestDispatchState_EmptyDispatcherRejected(t *testing.T) {
	env := newTestEnv(t, nil)

	err := env.dispatch.SetActiveDispatcher(context.Background(), "")

	assert.ErrorIs(t, err, service.ErrInvalidArgument)
}
