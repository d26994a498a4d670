// Package reservation defines the booking model shared by the demo catalog,
// the helper dashboard, and the family-action executor.
package reservation

import (
	"time"
)

// FlightStatus is the dashboard's five-way flight status vocabulary.
type FlightStatus string

const (
	StatusScheduled FlightStatus = "scheduled"
	StatusDelayed   FlightStatus = "delayed"
	StatusCancelled FlightStatus = "cancelled"
	StatusBoarding  FlightStatus = "boarding"
	StatusDeparted  FlightStatus = "departed"
)

// Valid reports whether s is one of the five dashboard statuses.
func (s FlightStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusDelayed, StatusCancelled, StatusBoarding, StatusDeparted:
		return true
	}
	return false
}

// Status is the reservation lifecycle state.
type Status string

const (
	StatusConfirmed    Status = "confirmed"
	StatusChanged      Status = "changed"
	StatusCancelledRes Status = "cancelled"
)

// Passenger is the traveler on a reservation. Optional identity fields stay
// empty rather than erroring; the presentation layer renders placeholders.
type Passenger struct {
	ID                 string `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone,omitempty"`
	AAdvantageNumber   string `json:"aadvantage_number,omitempty"`
	LanguagePreference string `json:"language_preference"`
	SeatPreference     string `json:"seat_preference,omitempty"`
}

// FullName returns "First Last".
func (p Passenger) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Flight is a single operated flight.
type Flight struct {
	ID            string       `json:"id"`
	FlightNumber  string       `json:"flight_number"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	DepartureTime time.Time    `json:"departure_time"`
	ArrivalTime   time.Time    `json:"arrival_time"`
	Gate          string       `json:"gate,omitempty"`
	Status        FlightStatus `json:"status"`
}

// Segment ties a flight to a reservation with a seat assignment.
type Segment struct {
	ID     string `json:"id"`
	Flight Flight `json:"flight"`
	Seat   string `json:"seat,omitempty"`
	Order  int    `json:"segment_order"`
}

// Reservation is a confirmed booking with ordered flight segments.
type Reservation struct {
	ID               string    `json:"id"`
	ConfirmationCode string    `json:"confirmation_code"`
	Passenger        Passenger `json:"passenger"`
	Status           Status    `json:"status"`
	Segments         []Segment `json:"flight_segments"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FirstSegment returns the first flight segment, or false for an empty
// itinerary.
func (r *Reservation) FirstSegment() (*Segment, bool) {
	if len(r.Segments) == 0 {
		return nil, false
	}
	return &r.Segments[0], true
}
