package reservation

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/caretrip/concierge/internal/airport"
)

// Alternative is a rebooking option offered when a flight is changed.
type Alternative struct {
	ID              string    `json:"id"`
	FlightNumber    string    `json:"flight_number"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	OriginCity      string    `json:"origin_city"`
	DestinationCity string    `json:"destination_city"`
	DepartureTime   time.Time `json:"departure_time"`
	ArrivalTime     time.Time `json:"arrival_time"`
	Gate            string    `json:"gate"`
	Status          string    `json:"status"`
	Duration        string    `json:"duration"`
}

// AlternativeFlights generates three synthetic rebooking options for a route
// and date, departing morning, afternoon, and evening. Flight numbers are
// deterministic per route so repeated lookups agree.
func AlternativeFlights(origin, destination string, date time.Time) []Alternative {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	hours := []int{8, 14, 19}
	out := make([]Alternative, 0, len(hours))
	for i, hour := range hours {
		dep := day.Add(time.Duration(hour) * time.Hour)
		out = append(out, Alternative{
			ID:              fmt.Sprintf("mock-%s-%s-%d", origin, destination, i+1),
			FlightNumber:    fmt.Sprintf("AA%d", 1000+routeHash(origin, destination, i+1)%9000),
			Origin:          origin,
			Destination:     destination,
			OriginCity:      airport.CityName(origin),
			DestinationCity: airport.CityName(destination),
			DepartureTime:   dep,
			ArrivalTime:     dep.Add(3 * time.Hour),
			Gate:            "TBD",
			Status:          string(StatusScheduled),
			Duration:        "3h 0m",
		})
	}
	return out
}

func routeHash(origin, destination string, n int) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s%s%d", origin, destination, n)
	return int(h.Sum32() & 0x7fffffff)
}
