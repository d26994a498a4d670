package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caretrip/concierge/internal/location"
)

func TestProjectMapFallbacks(t *testing.T) {
	passenger := &location.Point{Lat: 32.8968, Lng: -97.0380}
	gate := &location.Point{Lat: 32.9002, Lng: -97.0370}

	tests := []struct {
		name      string
		passenger *location.Point
		gate      *location.Point
	}{
		{"both missing", nil, nil},
		{"passenger missing", nil, gate},
		{"gate missing", passenger, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, g := location.ProjectMap(tt.passenger, tt.gate)
			assert.Equal(t, location.MapPoint{X: 30, Y: 70}, p)
			assert.Equal(t, location.MapPoint{X: 70, Y: 30}, g)
		})
	}
}

func TestProjectMapPinsPassenger(t *testing.T) {
	passenger := &location.Point{Lat: 32.8968, Lng: -97.0380}
	gate := &location.Point{Lat: 32.8970, Lng: -97.0378}

	p, _ := location.ProjectMap(passenger, gate)
	assert.Equal(t, location.MapPoint{X: 50, Y: 60}, p)
}

func TestProjectMapGateEastAndNorth(t *testing.T) {
	// Gate due east and slightly north: x right of the passenger, y above.
	passenger := &location.Point{Lat: 32.8968, Lng: -97.0380}
	gate := &location.Point{Lat: 32.8970, Lng: -97.0370}

	_, g := location.ProjectMap(passenger, gate)
	assert.Greater(t, g.X, 50.0)
	assert.Less(t, g.Y, 60.0)
	assert.LessOrEqual(t, g.X, 90.0)
	assert.GreaterOrEqual(t, g.Y, 10.0)
}

func TestProjectMapClampsLargeOffsets(t *testing.T) {
	// A gate a continent away still lands on the 50±40 canvas.
	passenger := &location.Point{Lat: 32.8968, Lng: -97.0380}
	gate := &location.Point{Lat: 40.6413, Lng: -73.7781}

	_, g := location.ProjectMap(passenger, gate)
	assert.Equal(t, 90.0, g.X)
	assert.Equal(t, 20.0, g.Y)
}

func TestProjectMapExactScale(t *testing.T) {
	// 0.001 degrees of longitude scales to 10 plane units.
	passenger := &location.Point{Lat: 32.0, Lng: -97.0}
	gate := &location.Point{Lat: 32.0, Lng: -96.999}

	_, g := location.ProjectMap(passenger, gate)
	assert.InDelta(t, 60.0, g.X, 1e-9)
	assert.InDelta(t, 60.0, g.Y, 1e-9)
}

func TestStyleForUnknownStatus(t *testing.T) {
	s := location.StyleFor(location.AlertStatus("escalated"))
	assert.Equal(t, "gray", s.Color)

	known := location.StyleFor(location.StatusUrgent)
	assert.Equal(t, "red", known.Color)
}
