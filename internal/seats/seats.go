// Package seats renders a synthetic cabin so the helper seat picker always
// has something to draw, even with no live seat inventory behind it.
package seats

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/caretrip/concierge/internal/reservation"
)

const totalRows = 12

var seatLetters = []string{"A", "B", "C", "D", "E", "F"}

// Seat is one position in the cabin map.
type Seat struct {
	ID        string `json:"id"`
	Row       int    `json:"row"`
	Letter    string `json:"letter"`
	Type      string `json:"type"` // "window", "middle", or "aisle"
	Occupied  bool   `json:"occupied"`
	IsCurrent bool   `json:"is_current"`
}

// Map is the full cabin layout for one flight.
type Map struct {
	Seats        []Seat `json:"seats"`
	CurrentSeat  string `json:"current_seat"`
	FlightNumber string `json:"flight_number"`
	TotalRows    int    `json:"total_rows"`
}

// ForReservation builds the seat map for a reservation's first flight. The
// occupancy pattern is a hash of flight number and seat id, so the same
// flight always renders the same cabin and the passenger's own seat is
// never shown occupied.
func ForReservation(res *reservation.Reservation) Map {
	flightNumber := ""
	currentSeat := ""
	if first, ok := res.FirstSegment(); ok {
		flightNumber = first.Flight.FlightNumber
		currentSeat = strings.ToUpper(first.Seat)
	}
	return Build(flightNumber, currentSeat)
}

// Build generates the cabin for a flight with the given current seat.
func Build(flightNumber, currentSeat string) Map {
	currentSeat = strings.ToUpper(currentSeat)

	seats := make([]Seat, 0, totalRows*len(seatLetters))
	for row := 1; row <= totalRows; row++ {
		for _, letter := range seatLetters {
			id := fmt.Sprintf("%d%s", row, letter)
			seat := Seat{
				ID:        id,
				Row:       row,
				Letter:    letter,
				Type:      seatType(letter),
				IsCurrent: id == currentSeat,
			}
			if !seat.IsCurrent {
				seat.Occupied = occupied(flightNumber, id)
			}
			seats = append(seats, seat)
		}
	}

	return Map{
		Seats:        seats,
		CurrentSeat:  currentSeat,
		FlightNumber: flightNumber,
		TotalRows:    totalRows,
	}
}

func seatType(letter string) string {
	switch letter {
	case "A", "F":
		return "window"
	case "C", "D":
		return "aisle"
	}
	return "middle"
}

// occupied fills roughly a third of the cabin.
func occupied(flightNumber, seatID string) bool {
	h := fnv.New32a()
	h.Write([]byte(flightNumber))
	h.Write([]byte(seatID))
	return h.Sum32()%3 == 0
}
