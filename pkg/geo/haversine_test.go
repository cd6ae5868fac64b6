package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		delta                  float64
	}{
		{name: "same point", lat1: -33.45, lng1: -70.66, lat2: -33.45, lng2: -70.66, want: 0, delta: 1e-9},
		{name: "one degree of latitude", lat1: 0, lng1: 0, lat2: 1, lng2: 0, want: 111.195, delta: 0.01},
		{name: "santiago to valparaiso", lat1: -33.4489, lng1: -70.6693, lat2: -33.0472, lng2: -71.6127, want: 98.4, delta: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HaversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2), tt.delta)
		})
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	d1 := HaversineKm(-33.4, -70.6, -33.6, -70.8)
	d2 := HaversineKm(-33.6, -70.8, -33.4, -70.6)
	assert.InDelta(t, d1, d2, 1e-9)
}
