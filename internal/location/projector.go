// Package location tracks passenger position relative to the departure gate
// and projects it for the helper dashboard.
package location

import "math"

// Point is a raw WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapPoint is a position in the dashboard's 0-100 schematic plane.
type MapPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Schematic plane constants. The scale deliberately exaggerates small
// real-world offsets and the clamp keeps the gate marker on the canvas;
// this is a decorative, directional-only rendering, not a map projection.
const (
	mapScale           = 10000
	mapClamp           = 40
	passengerX         = 50
	passengerY         = 60
	fallbackPassengerX = 30
	fallbackPassengerY = 70
	fallbackGateX      = 70
	fallbackGateY      = 30
)

// ProjectMap places the passenger and gate markers in the schematic plane.
// With either point missing it returns fixed fallback positions so the
// visualization always renders. Otherwise the passenger is pinned at the
// center-bottom reference point and the gate is offset by the scaled,
// clamped coordinate deltas, north up.
func ProjectMap(passenger, gate *Point) (passengerPos, gatePos MapPoint) {
	if passenger == nil || gate == nil {
		return MapPoint{X: fallbackPassengerX, Y: fallbackPassengerY},
			MapPoint{X: fallbackGateX, Y: fallbackGateY}
	}

	dLng := gate.Lng - passenger.Lng
	dLat := gate.Lat - passenger.Lat

	offsetX := math.Copysign(math.Min(math.Abs(dLng)*mapScale, mapClamp), dLng)
	offsetY := math.Copysign(math.Min(math.Abs(dLat)*mapScale, mapClamp), dLat)

	return MapPoint{X: passengerX, Y: passengerY},
		MapPoint{X: passengerX + offsetX, Y: passengerY - offsetY}
}
