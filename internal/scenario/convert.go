package scenario

import (
	"strings"
	"time"

	"github.com/caretrip/concierge/internal/reservation"
)

// statusMap narrows the four-way demo vocabulary to the dashboard's five-way
// one. "departed" is unreachable from a demo scenario, and any literal the
// map doesn't know collapses to cancelled. The asymmetry matches the shipped
// product; see DESIGN.md before "fixing" it.
var statusMap = map[DemoStatus]reservation.FlightStatus{
	DemoOnTime:    reservation.StatusScheduled,
	DemoBoarding:  reservation.StatusBoarding,
	DemoDelayed:   reservation.StatusDelayed,
	DemoCancelled: reservation.StatusCancelled,
}

// MapStatus converts one demo flight status to the dashboard vocabulary.
// Unrecognized values map to cancelled.
func MapStatus(s DemoStatus) reservation.FlightStatus {
	if mapped, ok := statusMap[s]; ok {
		return mapped
	}
	return reservation.StatusCancelled
}

// ToReservation converts a demo scenario into the dashboard reservation
// shape. The mapping is pure and total: every scenario flight produces
// exactly one segment.
func ToReservation(s *DemoScenario) reservation.Reservation {
	first, last := splitName(s.Passenger.Name)

	segments := make([]reservation.Segment, 0, len(s.Reservation.Flights))
	for i, leg := range s.Reservation.Flights {
		segments = append(segments, reservation.Segment{
			Flight: reservation.Flight{
				FlightNumber:  leg.FlightNumber,
				Origin:        leg.Origin,
				Destination:   leg.Destination,
				DepartureTime: leg.DepartureTime,
				ArrivalTime:   leg.ArrivalTime,
				Gate:          leg.Gate,
				Status:        MapStatus(leg.Status),
			},
			Seat:  leg.Seat,
			Order: i,
		})
	}

	return reservation.Reservation{
		ConfirmationCode: s.Reservation.ConfirmationCode,
		Passenger: reservation.Passenger{
			FirstName:          first,
			LastName:           last,
			LanguagePreference: s.Passenger.Language,
			Phone:              s.Passenger.Phone,
		},
		Status:    reservation.StatusConfirmed,
		Segments:  segments,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
