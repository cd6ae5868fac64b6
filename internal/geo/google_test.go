package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Options{
		APIKey:  "AIza-test",
		Region:  "Santiago, Chile",
		Country: "CL",
		Timeout: time.Second,
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return c
}

func TestGeocode_Success(t *testing.T) {
	var gotAddress, gotComponents string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAddress = r.URL.Query().Get("address")
		gotComponents = r.URL.Query().Get("components")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":-33.4372,"lng":-70.6506}}}]}`))
	})

	coords, err := c.Geocode(context.Background(), "Av. Libertador 1000", "frente al metro")

	require.NoError(t, err)
	assert.Equal(t, models.Coordinates{Lat: -33.4372, Lng: -70.6506}, coords)
	assert.Equal(t, "Av. Libertador 1000, frente al metro, Santiago, Chile", gotAddress)
	assert.Equal(t, "country:CL", gotComponents)
}

func TestGeocode_NoResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	})

	_, err := c.Geocode(context.Background(), "calle inexistente", "")

	assert.ErrorIs(t, err, service.ErrUpstreamUnavailable)
}

func TestGeocode_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Geocode(context.Background(), "Av. Libertador 1000", "")

	assert.ErrorIs(t, err, service.ErrUpstreamUnavailable)
}

func TestGeocode_EmptyAddress(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected request")
	})

	_, err := c.Geocode(context.Background(), "  ", "")

	assert.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestDirections_SumsLegs(t *testing.T) {
	var gotOrigin string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotOrigin = r.URL.Query().Get("origin")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","routes":[{"overview_polyline":{"points":"_p~iF~ps|U"},
			"legs":[{"duration":{"value":420,"text":"7 mins"}},{"duration":{"value":90,"text":"2 mins"}}]}]}`))
	})

	route, err := c.Directions(context.Background(),
		models.Coordinates{Lat: -33.45, Lng: -70.66},
		models.Coordinates{Lat: -33.44, Lng: -70.65})

	require.NoError(t, err)
	assert.Equal(t, "_p~iF~ps|U", route.Polyline)
	assert.Equal(t, 510*time.Second, route.Duration)
	assert.Equal(t, "-33.450000,-70.660000", gotOrigin)
}

func TestDirections_Failure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`))
	})

	_, err := c.Directions(context.Background(), models.Coordinates{}, models.Coordinates{Lat: 1, Lng: 1})

	assert.ErrorIs(t, err, service.ErrUpstreamUnavailable)
}

func TestGeocodeQuery(t *testing.T) {
	assert.Equal(t, "Calle 1, Santiago, Chile", geocodeQuery(" Calle 1 ", "", "Santiago, Chile"))
	assert.Equal(t, "Calle 1, depto 3", geocodeQuery("Calle 1", "depto 3", ""))
}
