package reservation

import (
	"strings"
	"time"
)

// SeedSpec describes one pre-seeded demo reservation. Departure offsets are
// relative to process "now" so the bookings always look upcoming.
type SeedSpec struct {
	ConfirmationCode string
	Passenger        Passenger
	Flights          []SeedFlight
}

// SeedFlight is one leg of a seeded itinerary.
type SeedFlight struct {
	FlightNumber    string
	Origin          string
	Destination     string
	DepartureOffset time.Duration
	ArrivalOffset   time.Duration
	Gate            string
	Seat            string
	Status          FlightStatus
}

// DemoSeeds returns the reservations users can look up with well-known
// confirmation codes (DEMO123 and friends).
func DemoSeeds() []SeedSpec {
	const day = 24 * time.Hour
	return []SeedSpec{
		{
			ConfirmationCode: "DEMO123",
			Passenger: Passenger{
				FirstName:          "Margaret",
				LastName:           "Johnson",
				Email:              "margaret.johnson@example.com",
				Phone:              "214-555-0123",
				LanguagePreference: "en",
			},
			Flights: []SeedFlight{
				{
					FlightNumber:    "AA1234",
					Origin:          "DFW",
					Destination:     "ORD",
					DepartureOffset: day + 14*time.Hour,
					ArrivalOffset:   day + 17*time.Hour,
					Gate:            "A12",
					Seat:            "14A",
					Status:          StatusScheduled,
				},
			},
		},
		{
			ConfirmationCode: "TEST456",
			Passenger: Passenger{
				FirstName:          "Robert",
				LastName:           "Smith",
				Email:              "robert.smith@example.com",
				Phone:              "310-555-0456",
				LanguagePreference: "en",
			},
			Flights: []SeedFlight{
				{
					FlightNumber:    "AA567",
					Origin:          "LAX",
					Destination:     "JFK",
					DepartureOffset: 2*day + 9*time.Hour,
					ArrivalOffset:   2*day + 17*time.Hour + 30*time.Minute,
					Gate:            "B7",
					Seat:            "22C",
					Status:          StatusScheduled,
				},
				{
					FlightNumber:    "AA890",
					Origin:          "JFK",
					Destination:     "MIA",
					DepartureOffset: 2*day + 19*time.Hour,
					ArrivalOffset:   2*day + 22*time.Hour + 15*time.Minute,
					Gate:            "C3",
					Seat:            "8F",
					Status:          StatusScheduled,
				},
			},
		},
		{
			ConfirmationCode: "ABUELA1",
			Passenger: Passenger{
				FirstName:          "Maria",
				LastName:           "Garcia",
				Email:              "maria.garcia@example.com",
				Phone:              "305-555-0789",
				LanguagePreference: "es",
			},
			Flights: []SeedFlight{
				{
					FlightNumber:    "AA2345",
					Origin:          "MIA",
					Destination:     "DFW",
					DepartureOffset: 3*day + 11*time.Hour,
					ArrivalOffset:   3*day + 13*time.Hour + 45*time.Minute,
					Gate:            "D15",
					Seat:            "6A",
					Status:          StatusScheduled,
				},
			},
		},
		{
			ConfirmationCode: "SENIOR2",
			Passenger: Passenger{
				FirstName:          "William",
				LastName:           "Thompson",
				Email:              "william.thompson@example.com",
				Phone:              "773-555-0234",
				LanguagePreference: "en",
			},
			Flights: []SeedFlight{
				{
					FlightNumber:    "AA789",
					Origin:          "ORD",
					Destination:     "DFW",
					DepartureOffset: day + 8*time.Hour,
					ArrivalOffset:   day + 10*time.Hour + 30*time.Minute,
					Gate:            "K8",
					Seat:            "3C",
					Status:          StatusScheduled,
				},
			},
		},
		{
			ConfirmationCode: "FAMILY3",
			Passenger: Passenger{
				FirstName:          "Dorothy",
				LastName:           "Williams",
				Email:              "dorothy.williams@example.com",
				Phone:              "602-555-0567",
				LanguagePreference: "en",
			},
			Flights: []SeedFlight{
				{
					FlightNumber:    "AA456",
					Origin:          "PHX",
					Destination:     "LAX",
					DepartureOffset: 4*day + 15*time.Hour,
					ArrivalOffset:   4*day + 16*time.Hour + 15*time.Minute,
					Gate:            "E22",
					Seat:            "12B",
					Status:          StatusScheduled,
				},
				{
					FlightNumber:    "AA1122",
					Origin:          "LAX",
					Destination:     "HNL",
					DepartureOffset: 4*day + 18*time.Hour,
					ArrivalOffset:   4*day + 21*time.Hour + 30*time.Minute,
					Gate:            "T4",
					Seat:            "12B",
					Status:          StatusScheduled,
				},
			},
		},
	}
}

// FindSeed returns the seed spec for a confirmation code, case-insensitively.
func FindSeed(code string) (SeedSpec, bool) {
	code = strings.ToUpper(code)
	for _, seed := range DemoSeeds() {
		if seed.ConfirmationCode == code {
			return seed, true
		}
	}
	return SeedSpec{}, false
}
