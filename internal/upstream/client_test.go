package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caretrip/concierge/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "console"})
	require.NoError(t, err)
	return log
}

func TestEnabled(t *testing.T) {
	log := testLogger(t)
	assert.False(t, NewClient("", 10*time.Second, log).Enabled())
	assert.True(t, NewClient("http://backend.local", 10*time.Second, log).Enabled())
}

func TestHelperSeats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/helper/abc123/seats", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"flight_number": "AA1234",
			"current_seat":  "14A",
			"total_rows":    12,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, testLogger(t))
	seatMap, err := client.HelperSeats(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "AA1234", seatMap.FlightNumber)
	assert.Equal(t, 12, seatMap.TotalRows)
}

func TestExecuteActionPostsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/helper/abc123/actions/execute", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "select_seat", body["action_type"])

		json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"action_id": "a-1",
			"message":   "Seat changed to 10F on flight AA1234",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, testLogger(t))
	resp, err := client.ExecuteAction(context.Background(), "abc123",
		"select_seat", map[string]any{"seat": "10F"}, "")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "a-1", resp.ActionID)
}

func TestErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, testLogger(t))
	_, err := client.RefreshLocation(context.Background(), "abc123")
	assert.ErrorContains(t, err, "unexpected status code: 502")
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server notices the client disconnect and
		// cancels the request context; otherwise Close() deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Minute, testLogger(t))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.CreateHandoff(ctx, nil, "test")
	assert.Error(t, err)
}
