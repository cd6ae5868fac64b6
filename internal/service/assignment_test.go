package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiqn/dispatch_engine/internal/config"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

// seed создает инцидент, спасателя и ожидающее предложение
func seed(t *testing.T, env *testEnv) (incidentID, rescuerID, assignmentID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	incidentID, err := env.incidents.UpsertBySession(ctx, "call-"+uuid.NewString(), models.IncidentPatch{
		Address: strPtr("Gran Avenida 4000"),
	})
	require.NoError(t, err)

	rescuer := &models.Rescuer{Name: "Carla"}
	require.NoError(t, env.rescuers.RegisterRescuer(ctx, rescuer))

	assignmentID, err = env.assignments.CreatePendingAssignment(ctx, incidentID)
	require.NoError(t, err)
	return incidentID, rescuer.ID, assignmentID
}

func requireAssignment(t *testing.T, env *testEnv, id uuid.UUID) *models.Assignment {
	t.Helper()
	a, err := env.store.Assignments().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.True(t, a.Valid(), "rescuer must be set exactly for accepted and completed assignments")
	return a
}

func TestCreateThenAccept(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	incidentID, rescuerID, assignmentID := seed(t, env)

	pending := requireAssignment(t, env, assignmentID)
	assert.Equal(t, models.AssignmentStatusPending, pending.Status)
	assert.Nil(t, pending.RescuerID)
	assert.False(t, pending.Times.Offered.IsZero())

	accepted, err := env.assignments.AcceptIncident(ctx, assignmentID, rescuerID)
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusAccepted, accepted.Status)

	stored := requireAssignment(t, env, assignmentID)
	require.NotNil(t, stored.RescuerID)
	assert.Equal(t, rescuerID, *stored.RescuerID)
	require.NotNil(t, stored.Times.Accepted)
	require.NotNil(t, stored.Times.Responded)
	assert.False(t, stored.Times.Accepted.Before(stored.Times.Offered))

	incident, err := env.incidents.GetByID(ctx, incidentID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusRescuerAssigned, incident.Status)

	latest, err := env.assignments.GetByIncident(ctx, incidentID)
	require.NoError(t, err)
	assert.Equal(t, assignmentID, latest.ID)

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.AssignmentTransitions.WithLabelValues("accept", "ok")))
}

func TestCreatePendingAssignment_UnknownIncident(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.assignments.CreatePendingAssignment(context.Background(), uuid.New())

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCreatePendingAssignment_FanOutAllowed(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	incidentID, _, first := seed(t, env)

	second, err := env.assignments.CreatePendingAssignment(ctx, incidentID)

	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	pending, err := env.store.Assignments().ListByStatus(ctx, models.AssignmentStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestCreatePendingAssignment_SingleOfferReturnsExisting(t *testing.T) {
	env := newTestEnv(t, &config.Config{AllowMultiplePendingAssignments: false, RankingConcurrency: 1})
	ctx := context.Background()
	incidentID, _, first := seed(t, env)

	second, err := env.assignments.CreatePendingAssignment(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAcceptIncident_ConcurrentExactlyOneWins(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	_, firstRescuer, assignmentID := seed(t, env)

	second := &models.Rescuer{Name: "Diego"}
	require.NoError(t, env.rescuers.RegisterRescuer(ctx, second))
	rescuers := []uuid.UUID{firstRescuer, second.ID}

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.assignments.AcceptIncident(ctx, assignmentID, rescuers[i%2])
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, service.ErrInvalidState)
	}
	assert.Equal(t, 1, successes)

	stored := requireAssignment(t, env, assignmentID)
	assert.Equal(t, models.AssignmentStatusAccepted, stored.Status)
}

func TestAcceptIncident_SiblingOfferAfterAccept(t *testing.T) {
	// Подготовка: два предложения по одному инциденту
	env := newTestEnv(t, nil)
	ctx := context.Background()
	incidentID, firstRescuer, firstOffer := seed(t, env)
	secondOffer, err := env.assignments.CreatePendingAssignment(ctx, incidentID)
	require.NoError(t, err)
	second := &models.Rescuer{Name: "Diego"}
	require.NoError(t, env.rescuers.RegisterRescuer(ctx, second))

	// Действие
	_, err = env.assignments.AcceptIncident(ctx, firstOffer, firstRescuer)
	require.NoError(t, err)
	_, err = env.assignments.AcceptIncident(ctx, secondOffer, second.ID)

	// Проверки
	assert.ErrorIs(t, err, service.ErrInvalidState)
	stored := requireAssignment(t, env, secondOffer)
	assert.Equal(t, models.AssignmentStatusPending, stored.Status)
	assert.Nil(t, stored.RescuerID)

	accepted, err := env.store.Assignments().ListByStatus(ctx, models.AssignmentStatusAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, firstOffer, accepted[0].ID)
}

func TestAcceptIncident_ConcurrentSiblingOffersExactlyOneWins(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	incidentID, _, _ := seed(t, env)

	const offers = 6
	offerIDs := make([]uuid.UUID, offers)
	rescuerIDs := make([]uuid.UUID, offers)
	for i := 0; i < offers; i++ {
		id, err := env.assignments.CreatePendingAssignment(ctx, incidentID)
		require.NoError(t, err)
		offerIDs[i] = id
		r := &models.Rescuer{Name: "Rescuer " + uuid.NewString()}
		require.NoError(t, env.rescuers.RegisterRescuer(ctx, r))
		rescuerIDs[i] = r.ID
	}

	errs := make([]error, offers)
	var wg sync.WaitGroup
	for i := 0; i < offers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.assignments.AcceptIncident(ctx, offerIDs[i], rescuerIDs[i])
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, service.ErrInvalidState)
	}
	assert.Equal(t, 1, successes)

	accepted, err := env.store.Assignments().ListByStatus(ctx, models.AssignmentStatusAccepted)
	require.NoError(t, err)
	assert.Len(t, accepted, 1)
}

func TestAcceptIncident_RescuerWithActiveAssignment(t *testing.T) {
	// Подготовка: спасатель уже принял первый инцидент
	env := newTestEnv(t, nil)
	ctx := context.Background()
	_, rescuerID, firstOffer := seed(t, env)
	_, err := env.assignments.AcceptIncident(ctx, firstOffer, rescuerID)
	require.NoError(t, err)
	_, _, secondOffer := seed(t, env)

	// Действие
	_, err = env.assignments.AcceptIncident(ctx, secondOffer, rescuerID)

	// Проверки
	assert.ErrorIs(t, err, service.ErrInvalidState)
	assert.Equal(t, models.AssignmentStatusPending, requireAssignment(t, env, secondOffer).Status)

	// После завершения спасатель снова свободен
	_, err = env.assignments.CompleteIncident(ctx, firstOffer)
	require.NoError(t, err)
	_, err = env.assignments.AcceptIncident(ctx, secondOffer, rescuerID)
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusAccepted, requireAssignment(t, env, secondOffer).Status)
}

func TestAcceptIncident_CompletedIncident(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	incidentID, rescuerID, firstOffer := seed(t, env)
	lateOffer, err := env.assignments.CreatePendingAssignment(ctx, incidentID)
	require.NoError(t, err)
	_, err = env.assignments.AcceptIncident(ctx, firstOffer, rescuerID)
	require.NoError(t, err)
	_, err = env.assignments.CompleteIncident(ctx, firstOffer)
	require.NoError(t, err)

	_, err = env.assignments.AcceptIncident(ctx, lateOffer, rescuerID)

	assert.ErrorIs(t, err, service.ErrInvalidState)
	incident, err := env.incidents.GetByID(ctx, incidentID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusCompleted, incident.Status)
}

func TestAcceptIncident_UnknownRescuerLeavesOfferPending(t *testing.T) {
	env := newTestEnv(t, nil)
	_, _, assignmentID := seed(t, env)

	_, err := env.assignments.AcceptIncident(context.Background(), assignmentID, uuid.New())

	assert.ErrorIs(t, err, service.ErrNotFound)
	stored := requireAssignment(t, env, assignmentID)
	assert.Equal(t, models.AssignmentStatusPending, stored.Status)
}

func TestRejectIncident(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	_, _, assignmentID := seed(t, env)

	rejected, err := env.assignments.RejectIncident(ctx, assignmentID)

	require.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusRejected, rejected.Status)
	stored := requireAssignment(t, env, assignmentID)
	assert.NotNil(t, stored.Times.Responded)
	assert.Nil(t, stored.RescuerID)

	// Повторного предложения нет
	pending, err := env.store.Assignments().ListByStatus(ctx, models.AssignmentStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRejectIncident_AfterAcceptLeavesRecordUnchanged(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	_, rescuerID, assignmentID := seed(t, env)
	_, err := env.assignments.AcceptIncident(ctx, assignmentID, rescuerID)
	require.NoError(t, err)
	before := requireAssignment(t, env, assignmentID)

	_, err = env.assignments.RejectIncident(ctx, assignmentID)

	assert.ErrorIs(t, err, service.ErrInvalidState)
	assert.Equal(t, before, requireAssignment(t, env, assignmentID))
}

func TestCancelAssignment(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	_, _, assignmentID := seed(t, env)

	cancelled, err := env.assignments.CancelAssignment(ctx, assignmentID)
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusCancelled, cancelled.Status)

	_, err = env.assignments.CancelAssignment(ctx, assignmentID)
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestCompleteIncident_PendingLeavesRecordsUnchanged(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	incidentID, _, assignmentID := seed(t, env)
	before := requireAssignment(t, env, assignmentID)

	_, err := env.assignments.CompleteIncident(ctx, assignmentID)

	assert.ErrorIs(t, err, service.ErrInvalidState)
	assert.Equal(t, before, requireAssignment(t, env, assignmentID))
	incident, err := env.incidents.GetByID(ctx, incidentID)
	require.NoError(t, err)
	assert.NotEqual(t, models.IncidentStatusCompleted, incident.Status)
}

func TestCompleteIncident_UpdatesStats(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	incidentID, rescuerID, assignmentID := seed(t, env)
	_, err := env.assignments.AcceptIncident(ctx, assignmentID, rescuerID)
	require.NoError(t, err)

	completed, err := env.assignments.CompleteIncident(ctx, assignmentID)
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusCompleted, completed.Status)

	stored := requireAssignment(t, env, assignmentID)
	require.NotNil(t, stored.Times.Completed)
	assert.False(t, stored.Times.Completed.Before(*stored.Times.Accepted))

	incident, err := env.incidents.GetByID(ctx, incidentID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusCompleted, incident.Status)

	rescuer, err := env.rescuers.GetRescuerDetails(ctx, rescuerID)
	require.NoError(t, err)
	assert.Equal(t, 1, rescuer.Stats.TotalRescues)
	require.NotNil(t, rescuer.Stats.AvgResponseTimeMinutes)
	assert.GreaterOrEqual(t, *rescuer.Stats.AvgResponseTimeMinutes, 0.0)

	// Повторное завершение недопустимо и не меняет статистику
	_, err = env.assignments.CompleteIncident(ctx, assignmentID)
	assert.ErrorIs(t, err, service.ErrInvalidState)
	rescuer, err = env.rescuers.GetRescuerDetails(ctx, rescuerID)
	require.NoError(t, err)
	assert.Equal(t, 1, rescuer.Stats.TotalRescues)
}

func TestAssignmentEventsPublished(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := env.broker.Subscribe(ctx, models.EntityAssignment)
	require.NoError(t, err)

	_, _, assignmentID := seed(t, env)

	event := <-ch
	assert.Equal(t, assignmentID.String(), event.ID)
	assert.Equal(t, models.OpCreated, event.Op)
}
