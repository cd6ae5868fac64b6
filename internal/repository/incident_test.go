package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiqn/dispatch_engine/internal/models"
)

func TestBuildUpsertQuery_OnlyProvidedFieldsOverwrite(t *testing.T) {
	// Подготовка
	address := "Av. Providencia 1234"
	age := 64
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	patch := models.IncidentPatch{
		Address:     &address,
		PatientAge:  &age,
		Coordinates: &models.Coordinates{Lat: -33.45, Lng: -70.66},
	}

	// Действие
	query, args := buildUpsertQuery(patch, "sess-1", now)

	// Проверки
	cols := patchColumns(patch)
	require.Len(t, args, 2+len(cols))
	assert.Equal(t, "sess-1", args[0])
	assert.Equal(t, now, args[1])

	assert.Contains(t, query, "ON CONFLICT (session_id) DO UPDATE SET")
	assert.Contains(t, query, "RETURNING id, (xmax = 0) AS inserted")
	assert.Contains(t, query, "last_updated = $2")

	for i, c := range cols {
		arg := args[i+2]
		switch c.name {
		case "address":
			assert.Equal(t, &address, arg)
		case "patient_age":
			assert.Equal(t, &age, arg)
		case "lat":
			assert.Equal(t, -33.45, *arg.(*float64))
		case "lng":
			assert.Equal(t, -70.66, *arg.(*float64))
		case "description":
			assert.Nil(t, arg.(*string))
		}
		assert.Contains(t, query, c.name+" = COALESCE($")
		assert.Contains(t, query, "incidents."+c.name+")")
	}
}

func TestBuildUpsertQuery_CastsEveryParameter(t *testing.T) {
	query, args := buildUpsertQuery(models.IncidentPatch{}, "sess-2", time.Now())

	assert.Contains(t, query, "$3::text")
	assert.Contains(t, query, "::double precision")
	assert.Contains(t, query, "::integer")
	assert.Equal(t, len(args)-2, strings.Count(query, "::")/2)
}

func TestListRecentQuery_TiesBrokenByInsertionOrder(t *testing.T) {
	assert.Contains(t, listRecentQuery, "ORDER BY created_at DESC, seq DESC")
	assert.NotContains(t, listRecentQuery, "id DESC")
	assert.NotContains(t, incidentColumns, "seq")
}
