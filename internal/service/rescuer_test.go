package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

func TestRegisterRescuer(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	err := env.rescuers.RegisterRescuer(ctx, &models.Rescuer{Name: "  "})
	assert.ErrorIs(t, err, service.ErrInvalidArgument)

	rescuer := &models.Rescuer{Name: "Paula", Phone: "+56911111111"}
	require.NoError(t, env.rescuers.RegisterRescuer(ctx, rescuer))
	assert.NotEqual(t, uuid.Nil, rescuer.ID)

	all, err := env.rescuers.GetAllRescuers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 0, all[0].Stats.TotalRescues)
	assert.Nil(t, all[0].Stats.AvgResponseTimeMinutes)
}

func TestGetRescuerDetails_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.rescuers.GetRescuerDetails(context.Background(), uuid.New())

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateLocation(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	rescuer := &models.Rescuer{Name: "Paula"}
	require.NoError(t, env.rescuers.RegisterRescuer(ctx, rescuer))

	assert.ErrorIs(t, env.rescuers.UpdateLocation(ctx, rescuer.ID, 120, 0), service.ErrInvalidArgument)
	assert.ErrorIs(t, env.rescuers.UpdateLocation(ctx, uuid.New(), -33.4, -70.6), service.ErrNotFound)
	require.NoError(t, env.rescuers.UpdateLocation(ctx, rescuer.ID, -33.4, -70.6))

	stored, err := env.rescuers.GetRescuerDetails(ctx, rescuer.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CurrentLocation)
	assert.Equal(t, -33.4, stored.CurrentLocation.Lat)
}

func TestGetAvailableIncidents_WithLinkedPatient(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	patient := &models.Patient{FirstName: "Elena", LastName: "Rojas"}
	require.NoError(t, env.patients.CreatePatient(ctx, patient))

	first, err := env.incidents.UpsertBySession(ctx, "s-1", models.IncidentPatch{PatientID: &patient.ID})
	require.NoError(t, err)
	second, err := env.incidents.UpsertBySession(ctx, "s-2", models.IncidentPatch{})
	require.NoError(t, err)

	_, err = env.assignments.CreatePendingAssignment(ctx, first)
	require.NoError(t, err)
	_, err = env.assignments.CreatePendingAssignment(ctx, second)
	require.NoError(t, err)

	views, err := env.rescuers.GetAvailableIncidents(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	// Новые предложения первыми
	assert.Equal(t, second, views[0].Incident.ID)
	assert.Nil(t, views[0].Patient)
	assert.Equal(t, first, views[1].Incident.ID)
	require.NotNil(t, views[1].Patient)
	assert.Equal(t, "Elena", views[1].Patient.FirstName)
}

func TestGetActiveAssignmentForRescuer(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	incidentID, rescuerID, assignmentID := seed(t, env)

	view, err := env.rescuers.GetActiveAssignmentForRescuer(ctx, rescuerID)
	require.NoError(t, err)
	assert.Nil(t, view)

	_, err = env.assignments.AcceptIncident(ctx, assignmentID, rescuerID)
	require.NoError(t, err)

	view, err = env.rescuers.GetActiveAssignmentForRescuer(ctx, rescuerID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, assignmentID, view.Assignment.ID)
	assert.Equal(t, incidentID, view.Incident.ID)
	assert.Equal(t, models.IncidentStatusRescuerAssigned, view.Incident.Status)
}

func TestRankAvailableIncidents_WithoutUpstreams(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	rescuer := &models.Rescuer{Name: "Tomás", CurrentLocation: &models.Location{Lat: 0, Lng: 0}}
	require.NoError(t, env.rescuers.RegisterRescuer(ctx, rescuer))

	near, err := env.incidents.UpsertBySession(ctx, "near", models.IncidentPatch{Coordinates: &models.Coordinates{Lat: 0.01, Lng: 0}})
	require.NoError(t, err)
	noGeo, err := env.incidents.UpsertBySession(ctx, "no-geo", models.IncidentPatch{Address: strPtr("Sin número")})
	require.NoError(t, err)

	for _, id := range []uuid.UUID{noGeo, near} {
		_, err := env.assignments.CreatePendingAssignment(ctx, id)
		require.NoError(t, err)
	}

	ranked, err := env.rescuers.RankAvailableIncidents(ctx, rescuer.ID)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, near, ranked[0].Incident.ID)
	assert.Equal(t, 2, ranked[0].ETAMinutes)
	assert.Equal(t, noGeo, ranked[1].Incident.ID)
	assert.Equal(t, service.UnreachableSentinel, ranked[1].ETAMinutes)
}
