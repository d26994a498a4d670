// Package scenario holds the fixed catalog of scripted demo scenarios and
// the conversion from the demo reservation shape to the dashboard one.
package scenario

import "time"

// Role identifies who speaks a transcript line.
type Role string

const (
	RoleAgent Role = "agent"
	RoleUser  Role = "user"
)

// Event tags a transcript line with a banner the host UI renders alongside
// the message. It is a side channel, not a state fork.
type Event string

const (
	EventHandoff   Event = "handoff"
	EventAlert     Event = "alert"
	EventAction    Event = "action"
	EventRebooking Event = "rebooking"
)

// DemoStatus is the demo catalog's four-way flight status vocabulary. It is
// deliberately narrower than the dashboard's five-way one: a scripted demo
// never shows a departed flight.
type DemoStatus string

const (
	DemoOnTime    DemoStatus = "on_time"
	DemoBoarding  DemoStatus = "boarding"
	DemoDelayed   DemoStatus = "delayed"
	DemoCancelled DemoStatus = "cancelled"
)

// TranscriptLine is one scripted message. DelayMs is the reveal offset from
// the previous line, not from playback start.
type TranscriptLine struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	DelayMs int    `json:"delay_ms"`
	Event   Event  `json:"event,omitempty"`
}

// Delay returns the line's reveal offset as a duration.
func (l TranscriptLine) Delay() time.Duration {
	return time.Duration(l.DelayMs) * time.Millisecond
}

// Profile is the demo passenger's display profile.
type Profile struct {
	Name        string `json:"name"`
	LoyaltyTier string `json:"loyalty_tier"`
	Language    string `json:"language"`
	Phone       string `json:"phone,omitempty"`
}

// FlightLeg is one leg of a demo itinerary.
type FlightLeg struct {
	FlightNumber  string     `json:"flight_number"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureTime time.Time  `json:"departure_time"`
	ArrivalTime   time.Time  `json:"arrival_time"`
	Gate          string     `json:"gate"`
	Seat          string     `json:"seat"`
	Status        DemoStatus `json:"status"`
}

// DemoReservation is the demo-shaped booking.
type DemoReservation struct {
	ConfirmationCode string      `json:"confirmation_code"`
	Flights          []FlightLeg `json:"flights"`
}

// DemoScenario is one entry in the fixed scenario catalog. Scenarios are
// defined at process start and never mutated.
type DemoScenario struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Badge       string           `json:"badge"`
	Passenger   Profile          `json:"passenger"`
	Reservation DemoReservation  `json:"reservation"`
	Transcript  []TranscriptLine `json:"transcript"`
}
