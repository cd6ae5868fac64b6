package service

import (
	"context"
	"time"

	"github.com/tiqn/dispatch_engine/internal/models"
)

//go:generate mockgen -source=external.go -destination=mocks/external.go -package=mocks

// Geocoder переводит адрес (и ориентир) в координаты в пределах фиксированного региона
type Geocoder interface {
	Geocode(ctx context.Context, address, reference string) (models.Coordinates, error)
}

// Route - результат запроса маршрута
type Route struct {
	Polyline string
	Duration time.Duration
}

// DirectionsProvider строит маршрут между двумя точками
type DirectionsProvider interface {
	Directions(ctx context.Context, origin, destination models.Coordinates) (Route, error)
}
