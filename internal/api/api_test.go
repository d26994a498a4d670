package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caretrip/concierge/internal/actions"
	"github.com/caretrip/concierge/internal/config"
	"github.com/caretrip/concierge/internal/handoff"
	"github.com/caretrip/concierge/internal/location"
	"github.com/caretrip/concierge/internal/playback"
	"github.com/caretrip/concierge/internal/scenario"
	"github.com/caretrip/concierge/internal/session"
	"github.com/caretrip/concierge/internal/storage/sqlite"
	"github.com/caretrip/concierge/internal/upstream"
	"github.com/caretrip/concierge/internal/websocket"
	"github.com/caretrip/concierge/pkg/logger"
)

type testServer struct {
	http     http.Handler
	sessions *session.Store
	player   *playback.Player
	alerts   *sqlite.AlertStorage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "console"})
	require.NoError(t, err)

	db, err := sqlite.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Default()
	reservations := sqlite.NewReservationStorage(db, log)
	actionStorage := sqlite.NewActionStorage(db, log)
	alertStorage := sqlite.NewAlertStorage(db, log)

	catalog := scenario.NewCatalog(time.Now())
	sessions := session.NewStore(cfg.Tracking.SessionExpiry(), log)
	tracker := location.NewTracker(cfg.Tracking.WalkingPace, log)
	alerter := location.NewAlerter(alertStorage, log)
	handoffs := handoff.NewRepository(log)
	actionService := actions.NewService(reservations, actionStorage, sessions, log)
	upstreamClient := upstream.NewClient("", cfg.Upstream.Timeout(), log)
	wsServer := websocket.NewServer(log)

	player := playback.NewPlayer(time.Hour, nil, log)
	t.Cleanup(player.Close)

	handler := NewHandler(catalog, player, sessions, reservations, actionService,
		tracker, alerter, handoffs, upstreamClient, wsServer, cfg, log)

	return &testServer{
		http:     NewRouter(handler, cfg, log).Routes(),
		sessions: sessions,
		player:   player,
		alerts:   alertStorage,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.http.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode(t, rec)["status"])
}

func TestScenarioEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/scenarios", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	scenarios := decode(t, rec)["scenarios"].([]any)
	require.NotEmpty(t, scenarios)

	first := scenarios[0].(map[string]any)
	id := first["id"].(string)

	rec = ts.do(t, http.MethodGet, "/api/v1/scenarios/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/scenarios/"+id+"/reservation", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode(t, rec)["reservation"].(map[string]any)
	assert.NotEmpty(t, res["confirmation_code"])

	rec = ts.do(t, http.MethodGet, "/api/v1/scenarios/bogus", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDemoPlaybackTransport(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/demo/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "idle", decode(t, rec)["state"])

	rec = ts.do(t, http.MethodPost, "/api/v1/demo/select",
		map[string]string{"scenario_id": "delayed-rebooking"})
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode(t, rec)
	assert.Equal(t, "playing", state["state"])

	rec = ts.do(t, http.MethodPost, "/api/v1/demo/pause", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "paused", decode(t, rec)["state"])

	rec = ts.do(t, http.MethodPost, "/api/v1/demo/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "playing", decode(t, rec)["state"])

	rec = ts.do(t, http.MethodPost, "/api/v1/demo/select",
		map[string]string{"scenario_id": "bogus"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionAndHelperFlow(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sess := decode(t, rec)["session"].(map[string]any)
	sessionID := sess["id"].(string)

	rec = ts.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/reservation",
		map[string]string{"confirmation_code": "DEMO123"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages",
		map[string]string{"role": "user", "content": "My flight is delayed"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/helper/create-link",
		map[string]string{"session_id": sessionID})
	require.Equal(t, http.StatusOK, rec.Code)
	link := decode(t, rec)["helper_link"].(string)
	require.NotEmpty(t, link)

	rec = ts.do(t, http.MethodGet, "/api/v1/helper/"+link, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode(t, rec)
	assert.NotNil(t, view["reservation"])
	assert.Len(t, view["messages"].([]any), 1)

	rec = ts.do(t, http.MethodPost, "/api/v1/helper/"+link+"/suggest",
		map[string]string{"message": "Take the 2pm flight"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/helper/"+link, nil)
	assert.Len(t, decode(t, rec)["messages"].([]any), 2)

	rec = ts.do(t, http.MethodGet, "/api/v1/helper/bogus", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHelperSeatsAndActions(t *testing.T) {
	ts := newTestServer(t)
	link := ts.helperLink(t, "DEMO123")

	rec := ts.do(t, http.MethodGet, "/api/v1/helper/"+link+"/seats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	seatMap := decode(t, rec)
	assert.Equal(t, "AA1234", seatMap["flight_number"])
	assert.Equal(t, "14A", seatMap["current_seat"])
	assert.NotEmpty(t, seatMap["seats"])

	rec = ts.do(t, http.MethodGet, "/api/v1/helper/"+link+"/actions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	available := decode(t, rec)["available_actions"].([]any)
	assert.Len(t, available, 5)

	rec = ts.do(t, http.MethodPost, "/api/v1/helper/"+link+"/actions/execute",
		map[string]any{
			"action_type": "select_seat",
			"params":      map[string]any{"seat": "10F"},
			"notes":       "aisle is easier",
		})
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode(t, rec)
	assert.Equal(t, true, result["success"])

	rec = ts.do(t, http.MethodGet, "/api/v1/helper/"+link+"/actions", nil)
	history := decode(t, rec)["history"].([]any)
	require.Len(t, history, 1)
	assert.Equal(t, "executed", history[0].(map[string]any)["status"])
}

func TestLocationFlow(t *testing.T) {
	ts := newTestServer(t)
	link, sessionID := ts.helperLinkWithSession(t, "DEMO123")

	// Margaret's seeded gate is DFW A12; report near Terminal E, far away.
	rec := ts.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/location",
		map[string]any{"lat": 32.8896, "lng": -97.0350, "accuracy": 10})
	require.Equal(t, http.StatusOK, rec.Code)
	update := decode(t, rec)
	assert.Equal(t, true, update["stored"])
	report := update["report"].(map[string]any)
	require.NotNil(t, report["metrics"])
	metrics := report["metrics"].(map[string]any)
	assert.Greater(t, metrics["distance_meters"].(float64), 0.0)

	rec = ts.do(t, http.MethodGet, "/api/v1/helper/"+link+"/location", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.NotNil(t, payload["map"])
	assert.NotNil(t, payload["style"])

	rec = ts.do(t, http.MethodPost, "/api/v1/helper/"+link+"/location/refresh", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHelperLocationCarriesUnacknowledgedAlert(t *testing.T) {
	ts := newTestServer(t)
	link, sessionID := ts.helperLinkWithSession(t, "DEMO123")

	alert := &location.AlertRecord{
		ID:               uuid.NewString(),
		SessionID:        sessionID,
		Type:             location.AlertUrgent,
		Message:          "Margaret is 20 minutes from gate A12. Gate closes in 5 minutes",
		DistanceMeters:   1000,
		WalkingMinutes:   20,
		DepartureMinutes: 20,
		CreatedAt:        time.Now(),
	}
	require.NoError(t, ts.alerts.Insert(alert))

	// The alert rides along on the location payload until acknowledged, so
	// a helper loading the page after the broadcast still sees it.
	rec := ts.do(t, http.MethodGet, "/api/v1/helper/"+link+"/location", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode(t, rec)["report"].(map[string]any)
	got, ok := report["alert"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, alert.ID, got["id"])
	assert.Equal(t, string(location.AlertUrgent), got["type"])

	rec = ts.do(t, http.MethodPost,
		"/api/v1/helper/"+link+"/alerts/"+alert.ID+"/acknowledge", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/helper/"+link+"/location", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	report = decode(t, rec)["report"].(map[string]any)
	assert.Nil(t, report["alert"])
}

func TestHandoffEndpoint(t *testing.T) {
	ts := newTestServer(t)
	_, sessionID := ts.helperLinkWithSession(t, "ABUELA1")

	rec := ts.do(t, http.MethodPost, "/api/v1/handoff", map[string]any{
		"session_id": sessionID,
		"reason":     "needs Spanish-speaking agent",
		"transcript": []map[string]string{
			{"role": "user", "content": "Quiero hablar con una persona"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.NotEmpty(t, out["dossier_id"])
	assert.Contains(t, out["bridge_message"], "Maria Garcia")
	assert.Equal(t, "1-800-433-7300", out["phone_number"])
}

func TestReservationLookupAndFlights(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/reservations/lookup?confirmation_code=DEMO123", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.NotNil(t, payload["countdown"])
	assert.Equal(t, "Not enrolled", payload["loyalty"])

	rec = ts.do(t, http.MethodGet, "/api/v1/reservations/lookup?last_name=Thompson", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/reservations/lookup", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/reservations/lookup?confirmation_code=NOPE", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/flights/alternatives?origin=DFW&destination=ORD&date=2026-09-15", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["flights"].([]any), 3)

	rec = ts.do(t, http.MethodGet, "/api/v1/flights/alternatives?origin=DFW", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAirportsAndContact(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/airports", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["airports"])

	rec = ts.do(t, http.MethodGet, "/api/v1/airports?code=DFW", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dallas", decode(t, rec)["city"])

	rec = ts.do(t, http.MethodGet, "/api/v1/airports?code=XXX", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/contact", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1-800-433-7300", decode(t, rec)["phone_number"])
}

// helperLink sets up a session with an attached reservation and returns its
// helper link.
func (ts *testServer) helperLink(t *testing.T, code string) string {
	link, _ := ts.helperLinkWithSession(t, code)
	return link
}

func (ts *testServer) helperLinkWithSession(t *testing.T, code string) (string, string) {
	t.Helper()
	sess := ts.sessions.Create()

	rec := ts.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/reservation",
		map[string]string{"confirmation_code": code})
	require.Equal(t, http.StatusOK, rec.Code)

	link, _, err := ts.sessions.CreateHelperLink(sess.ID)
	require.NoError(t, err)
	return link, sess.ID
}
