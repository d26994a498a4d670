package handoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caretrip/concierge/internal/reservation"
	"github.com/caretrip/concierge/pkg/logger"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "console"})
	require.NoError(t, err)
	return NewRepository(log)
}

func TestCreateWithReservation(t *testing.T) {
	repo := newTestRepo(t)
	res := &reservation.Reservation{
		ConfirmationCode: "DEMO123",
		Passenger:        reservation.Passenger{FirstName: "Margaret", LastName: "Johnson"},
		Segments: []reservation.Segment{{
			Flight: reservation.Flight{
				FlightNumber:  "AA1234",
				Origin:        "DFW",
				Destination:   "ORD",
				DepartureTime: time.Now().Add(4 * time.Hour),
			},
		}},
	}
	transcript := []TranscriptLine{
		{Role: "user", Content: "I want to talk to a person"},
		{Role: "agent", Content: "Of course, connecting you now"},
	}

	d := repo.Create(transcript, "caller requested human agent", res)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Margaret Johnson", d.PassengerName)
	assert.Equal(t, "AA1234", d.FlightNumber)
	assert.Equal(t, "DFW to ORD", d.Route)
	assert.Len(t, d.Transcript, 2)

	assert.Contains(t, d.BridgeMessage, "Margaret Johnson")
	assert.Contains(t, d.BridgeMessage, "AA1234")
	assert.Contains(t, d.BridgeMessage, "caller requested human agent")
	assert.Contains(t, d.BridgeMessage, "2 messages")

	got, ok := repo.Get(d.ID)
	require.True(t, ok)
	assert.Equal(t, d.ID, got.ID)
}

func TestCreateWithoutContext(t *testing.T) {
	repo := newTestRepo(t)

	d := repo.Create(nil, "", nil)
	assert.Empty(t, d.PassengerName)
	assert.Contains(t, d.BridgeMessage, "assistance requested")
	assert.Contains(t, d.BridgeMessage, "0 messages")

	_, ok := repo.Get("missing")
	assert.False(t, ok)
}
