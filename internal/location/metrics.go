package location

import (
	"fmt"
	"math"
	"time"

	"github.com/caretrip/concierge/internal/airport"
)

// AlertStatus classifies how the passenger is doing against departure.
type AlertStatus string

const (
	StatusSafe    AlertStatus = "safe"
	StatusWarning AlertStatus = "warning"
	StatusUrgent  AlertStatus = "urgent"
	StatusArrived AlertStatus = "arrived"
)

// Classification thresholds.
const (
	// gateArrivalMeters: within this distance the passenger counts as at
	// the gate.
	gateArrivalMeters = 100
	// safeBufferMins / warningBufferMins bound the walking-time margin
	// against departure.
	safeBufferMins    = 30
	warningBufferMins = 15
)

// Metrics is the computed location summary shown on the helper dashboard.
type Metrics struct {
	DistanceMeters         int         `json:"distance_meters"`
	WalkingTimeMinutes     int         `json:"walking_time_minutes"`
	TimeToDepartureMinutes int         `json:"time_to_departure_minutes"`
	AlertStatus            AlertStatus `json:"alert_status"`
}

// DistanceMeters is the great-circle distance between two points in meters.
func DistanceMeters(a, b Point) float64 {
	const earthRadiusM = 6371000

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusM * c
}

// WalkingMinutes estimates the walk for a distance at a pace profile,
// never less than one minute.
func WalkingMinutes(distanceMeters float64, pace string) int {
	minutes := int(math.Round(distanceMeters / airport.WalkingSpeed(pace)))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// MinutesToDeparture floors the remaining time to whole minutes, never
// negative.
func MinutesToDeparture(departure, now time.Time) int {
	mins := int(departure.Sub(now).Minutes())
	if mins < 0 {
		return 0
	}
	return mins
}

// Classify picks the alert status and its dashboard message from the
// computed metrics. gate is only used in message text.
func Classify(distanceMeters float64, walkingMins, departureMins int, gate string) (AlertStatus, string) {
	switch {
	case distanceMeters <= gateArrivalMeters:
		return StatusArrived, fmt.Sprintf("You've arrived at gate %s!", gate)
	case walkingMins > departureMins-warningBufferMins:
		return StatusUrgent, fmt.Sprintf("Urgent: You may miss your flight! Gate closes in %d minutes.", departureMins-15)
	case walkingMins > departureMins-safeBufferMins:
		return StatusWarning, fmt.Sprintf("Please head to your gate now. It's about %d minutes away.", walkingMins)
	default:
		return StatusSafe, fmt.Sprintf("You have plenty of time. Gate %s is about %d minutes away.", gate, walkingMins)
	}
}
