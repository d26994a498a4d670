package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoSeeds(t *testing.T) {
	seeds := DemoSeeds()
	require.Len(t, seeds, 5)

	codes := make(map[string]bool)
	for _, seed := range seeds {
		codes[seed.ConfirmationCode] = true
		require.NotEmpty(t, seed.Flights, "seed %s", seed.ConfirmationCode)
		for _, leg := range seed.Flights {
			assert.Greater(t, leg.ArrivalOffset, leg.DepartureOffset,
				"seed %s flight %s", seed.ConfirmationCode, leg.FlightNumber)
			assert.Greater(t, leg.DepartureOffset, time.Duration(0))
		}
	}

	for _, code := range []string{"DEMO123", "TEST456", "ABUELA1", "SENIOR2", "FAMILY3"} {
		assert.True(t, codes[code], "missing seed %s", code)
	}
}

func TestFindSeedCaseInsensitive(t *testing.T) {
	seed, ok := FindSeed("demo123")
	require.True(t, ok)
	assert.Equal(t, "DEMO123", seed.ConfirmationCode)
	assert.Equal(t, "Margaret", seed.Passenger.FirstName)

	_, ok = FindSeed("NOPE999")
	assert.False(t, ok)
}

func TestAlternativeFlights(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	flights := AlternativeFlights("DFW", "ORD", date)
	require.Len(t, flights, 3)

	wantHours := []int{8, 14, 19}
	for i, f := range flights {
		assert.Equal(t, wantHours[i], f.DepartureTime.Hour())
		assert.Equal(t, f.DepartureTime.Add(3*time.Hour), f.ArrivalTime)
		assert.Equal(t, "TBD", f.Gate)
		assert.Equal(t, "3h 0m", f.Duration)
		assert.Equal(t, "DFW", f.Origin)
		assert.Equal(t, "ORD", f.Destination)
		assert.Equal(t, "Dallas", f.OriginCity)
		assert.Equal(t, "Chicago", f.DestinationCity)
		assert.Regexp(t, `^AA\d{4}$`, f.FlightNumber)
	}
}

func TestAlternativeFlightsDeterministic(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	first := AlternativeFlights("LAX", "JFK", date)
	second := AlternativeFlights("LAX", "JFK", date)
	assert.Equal(t, first, second)

	other := AlternativeFlights("JFK", "LAX", date)
	assert.NotEqual(t, first[0].FlightNumber, other[0].FlightNumber)
}

func TestFirstSegment(t *testing.T) {
	var empty Reservation
	_, ok := empty.FirstSegment()
	assert.False(t, ok)

	res := Reservation{Segments: []Segment{{ID: "s1"}, {ID: "s2"}}}
	first, ok := res.FirstSegment()
	require.True(t, ok)
	assert.Equal(t, "s1", first.ID)
}

func TestFlightStatusValid(t *testing.T) {
	for _, s := range []FlightStatus{StatusScheduled, StatusDelayed, StatusCancelled, StatusBoarding, StatusDeparted} {
		assert.True(t, s.Valid())
	}
	assert.False(t, FlightStatus("on_time").Valid())
	assert.False(t, FlightStatus("").Valid())
}
