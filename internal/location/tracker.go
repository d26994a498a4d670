package location

import (
	"sync"
	"time"

	"github.com/caretrip/concierge/internal/airport"
	"github.com/caretrip/concierge/pkg/logger"
)

// minMovementMeters filters GPS jitter: an update closer than this to the
// last stored sample is dropped.
const minMovementMeters = 50

// Sample is the last known passenger position. Only the newest sample is
// retained per session.
type Sample struct {
	Point
	Accuracy  float64   `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// GateFix is the resolved gate position for a session's flight.
type GateFix struct {
	Point
	Gate        string `json:"gate"`
	Terminal    string `json:"terminal"`
	Approximate bool   `json:"approximate,omitempty"`
}

// Report is the full location payload for the helper dashboard.
type Report struct {
	PassengerLocation *Sample      `json:"passenger_location"`
	GateLocation      *GateFix     `json:"gate_location"`
	Metrics           *Metrics     `json:"metrics"`
	Directions        string       `json:"directions"`
	Message           string       `json:"message"`
	Alert             *AlertRecord `json:"alert,omitempty"`
}

// Tracker keeps the last location sample per session. History beyond that
// is not retained.
type Tracker struct {
	mu     sync.Mutex
	last   map[string]Sample
	pace   string
	logger *logger.Logger
}

// NewTracker creates a tracker using the given walking-pace profile.
func NewTracker(pace string, log *logger.Logger) *Tracker {
	return &Tracker{
		last:   make(map[string]Sample),
		pace:   pace,
		logger: log.Named("location"),
	}
}

// Update records a new position for a session. The first sample is always
// stored; later ones only when they move at least minMovementMeters from
// the stored point. Returns the stored sample and whether it was stored.
func (t *Tracker) Update(sessionID string, lat, lng, accuracy float64) (Sample, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := Sample{
		Point:     Point{Lat: lat, Lng: lng},
		Accuracy:  accuracy,
		Timestamp: time.Now().UTC(),
	}

	if prev, ok := t.last[sessionID]; ok {
		if DistanceMeters(prev.Point, next.Point) < minMovementMeters {
			return prev, false
		}
	}

	t.last[sessionID] = next
	t.logger.Info("Location stored",
		logger.String("session_id", sessionID),
		logger.Float64("lat", lat),
		logger.Float64("lng", lng))
	return next, true
}

// Last returns the newest sample for a session.
func (t *Tracker) Last(sessionID string) (Sample, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.last[sessionID]
	return s, ok
}

// Clear drops a session's sample, for session teardown.
func (t *Tracker) Clear(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.last, sessionID)
}

// BuildReport assembles the dashboard location payload for a session. gate
// may be nil when the flight has no mapped gate; the report still renders
// with whatever is known. departure is the flight's scheduled departure.
func (t *Tracker) BuildReport(sessionID string, gate *GateFix, airportCode string, departure time.Time, language string) Report {
	report := Report{GateLocation: gate}

	sample, ok := t.Last(sessionID)
	if !ok {
		report.Message = "No location data available"
		return report
	}
	report.PassengerLocation = &sample

	if gate == nil {
		report.Message = "Gate information not available"
		return report
	}

	distance := DistanceMeters(sample.Point, gate.Point)
	walking := WalkingMinutes(distance, t.pace)
	remaining := MinutesToDeparture(departure, time.Now())
	status, message := Classify(distance, walking, remaining, gate.Gate)

	report.Metrics = &Metrics{
		DistanceMeters:         int(distance + 0.5),
		WalkingTimeMinutes:     walking,
		TimeToDepartureMinutes: remaining,
		AlertStatus:            status,
	}
	report.Message = message
	report.Directions = airport.SimpleDirections(sample.Lat, sample.Lng, gate.Gate, airportCode, language)
	return report
}
