package geo

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
	"googlemaps.github.io/maps"
)

// Options - настройки клиента Google Maps
type Options struct {
	APIKey  string
	Region  string
	Country string
	Timeout time.Duration
	// BaseURL переопределяет адрес API
	BaseURL string
}

// Client реализует service.Geocoder и service.DirectionsProvider поверх Google Maps
type Client struct {
	maps    *maps.Client
	region  string
	country string
}

var (
	_ service.Geocoder           = (*Client)(nil)
	_ service.DirectionsProvider = (*Client)(nil)
)

func NewClient(opts Options) (*Client, error) {
	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(opts.APIKey),
		maps.WithHTTPClient(&http.Client{Timeout: opts.Timeout}),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, maps.WithBaseURL(opts.BaseURL))
	}

	c, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Client{
		maps:    c,
		region:  opts.Region,
		country: opts.Country,
	}, nil
}

// Geocode ищет "адрес, ориентир, регион" с ограничением по стране
func (c *Client) Geocode(ctx context.Context, address, reference string) (models.Coordinates, error) {
	if strings.TrimSpace(address) == "" {
		return models.Coordinates{}, fmt.Errorf("geocode: empty address: %w", service.ErrInvalidArgument)
	}

	req := &maps.GeocodingRequest{
		Address: geocodeQuery(address, reference, c.region),
	}
	if c.country != "" {
		req.Components = map[maps.Component]string{maps.ComponentCountry: c.country}
		req.Region = strings.ToLower(c.country)
	}

	results, err := c.maps.Geocode(ctx, req)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("geocode %q: %v: %w", req.Address, err, service.ErrUpstreamUnavailable)
	}
	if len(results) == 0 {
		return models.Coordinates{}, fmt.Errorf("geocode %q: no results: %w", req.Address, service.ErrUpstreamUnavailable)
	}

	loc := results[0].Geometry.Location
	return models.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// Directions строит маршрут на автомобиле и суммирует длительность всех участков
func (c *Client) Directions(ctx context.Context, origin, destination models.Coordinates) (service.Route, error) {
	req := &maps.DirectionsRequest{
		Origin:      latLng(origin),
		Destination: latLng(destination),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := c.maps.Directions(ctx, req)
	if err != nil {
		return service.Route{}, fmt.Errorf("directions: %v: %w", err, service.ErrUpstreamUnavailable)
	}
	if len(routes) == 0 {
		return service.Route{}, fmt.Errorf("directions: %w", errNoRoute)
	}

	route := routes[0]
	var total time.Duration
	for _, leg := range route.Legs {
		total += leg.Duration
	}

	return service.Route{
		Polyline: route.OverviewPolyline.Points,
		Duration: total,
	}, nil
}

var errNoRoute = fmt.Errorf("no route found: %w", service.ErrUpstreamUnavailable)

func geocodeQuery(address, reference, region string) string {
	parts := []string{strings.TrimSpace(address)}
	if ref := strings.TrimSpace(reference); ref != "" {
		parts = append(parts, ref)
	}
	if region != "" {
		parts = append(parts, region)
	}
	return strings.Join(parts, ", ")
}

func latLng(c models.Coordinates) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}
