package actions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caretrip/concierge/internal/reservation"
	"github.com/caretrip/concierge/internal/session"
	"github.com/caretrip/concierge/internal/storage/sqlite"
	"github.com/caretrip/concierge/pkg/logger"
)

type fixture struct {
	service  *Service
	sessions *session.Store
	storage  *sqlite.ReservationStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "console"})
	require.NoError(t, err)

	db, err := sqlite.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	reservations := sqlite.NewReservationStorage(db, log)
	actionStorage := sqlite.NewActionStorage(db, log)
	sessions := session.NewStore(30*time.Minute, log)

	return &fixture{
		service:  NewService(reservations, actionStorage, sessions, log),
		sessions: sessions,
		storage:  reservations,
	}
}

func (f *fixture) sessionWithReservation(t *testing.T, code string) session.Session {
	t.Helper()
	sess := f.sessions.Create()
	if code != "" {
		_, err := f.storage.GetByCode(code)
		require.NoError(t, err)
		require.NoError(t, f.sessions.AttachReservation(sess.ID, code))
	}
	got, err := f.sessions.Get(sess.ID)
	require.NoError(t, err)
	return got
}

func TestAvailableActions(t *testing.T) {
	confirmed := &reservation.Reservation{Status: reservation.StatusConfirmed}
	available := Available(confirmed)
	require.Len(t, available, 5)
	for _, info := range available {
		assert.True(t, info.Enabled)
		assert.NotEmpty(t, info.DisplayName)
		assert.NotEmpty(t, info.Icon)
	}

	cancelled := &reservation.Reservation{Status: reservation.StatusCancelledRes}
	assert.Empty(t, Available(cancelled))
	assert.Empty(t, Available(nil))
}

func TestSelectSeat(t *testing.T) {
	f := newFixture(t)
	sess := f.sessionWithReservation(t, "DEMO123")

	result, err := f.service.SelectSeat(sess, "10f", "", "window please")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Seat changed to 10F on flight AA1234", result.Message)

	res, err := f.storage.GetByCode("DEMO123")
	require.NoError(t, err)
	assert.Equal(t, "10F", res.Segments[0].Seat)

	history, err := f.service.History(sess.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Select Seat", history[0].DisplayName)
	assert.Equal(t, "executed", history[0].Status)
	assert.Equal(t, "window please", history[0].FamilyNotes)
}

func TestCancelFlightTwiceFails(t *testing.T) {
	f := newFixture(t)
	sess := f.sessionWithReservation(t, "SENIOR2")

	result, err := f.service.CancelFlight(sess, "trip cancelled", "")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "SENIOR2 has been cancelled")

	result, err = f.service.CancelFlight(sess, "again", "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Reservation already cancelled", result.Error)

	// Both attempts are in the history.
	history, err := f.service.History(sess.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestChangeFlight(t *testing.T) {
	f := newFixture(t)
	sess := f.sessionWithReservation(t, "ABUELA1")

	result, err := f.service.ChangeFlight(sess, "unknown-id", "")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "Flight changed from AA2345 to AA")

	res, err := f.storage.GetByCode("ABUELA1")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusChanged, res.Status)
}

func TestAddBagsAccumulates(t *testing.T) {
	f := newFixture(t)
	sess := f.sessionWithReservation(t, "DEMO123")

	result, err := f.service.AddBags(sess, 2, "")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Added 2 checked bag(s). Total: 2 bags", result.Message)

	sess, err = f.sessions.Get(sess.ID)
	require.NoError(t, err)
	result, err = f.service.AddBags(sess, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "Added 1 checked bag(s). Total: 3 bags", result.Message)
}

func TestRequestWheelchair(t *testing.T) {
	f := newFixture(t)
	sess := f.sessionWithReservation(t, "DEMO123")

	result, err := f.service.RequestWheelchair(sess, "", "grandma needs help")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Wheelchair assistance has been requested", result.Message)

	got, err := f.sessions.Get(sess.ID)
	require.NoError(t, err)
	assert.Contains(t, got.Context, "wheelchair_assistance")
}

func TestActionWithoutReservationFails(t *testing.T) {
	f := newFixture(t)
	sess := f.sessionWithReservation(t, "")

	result, err := f.service.SelectSeat(sess, "10F", "", "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "No reservation found", result.Error)
	assert.NotEmpty(t, result.ActionID)
}

func TestExecuteDispatch(t *testing.T) {
	f := newFixture(t)
	sess := f.sessionWithReservation(t, "DEMO123")

	result, err := f.service.Execute(sess, TypeSelectSeat, map[string]any{"seat": "9A"}, "")
	require.NoError(t, err)
	assert.True(t, result.Success)

	_, err = f.service.Execute(sess, "teleport", nil, "")
	assert.Error(t, err)
}
