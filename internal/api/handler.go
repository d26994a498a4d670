// Package api exposes the concierge REST surface consumed by the demo
// dashboard and the family helper view.
package api

import (
	"encoding/json"
	"net/http"

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

// Handler holds the services behind the HTTP surface
type Handler struct {
	catalog      *scenario.Catalog
	player       *playback.Player
	sessions     *session.Store
	reservations *sqlite.ReservationStorage
	actions      *actions.Service
	tracker      *location.Tracker
	alerter      *location.Alerter
	handoffs     *handoff.Repository
	upstream     *upstream.Client
	wsServer     *websocket.Server
	config       *config.Config
	logger       *logger.Logger
}

// NewHandler creates a new API handler
func NewHandler(
	catalog *scenario.Catalog,
	player *playback.Player,
	sessions *session.Store,
	reservations *sqlite.ReservationStorage,
	actionService *actions.Service,
	tracker *location.Tracker,
	alerter *location.Alerter,
	handoffs *handoff.Repository,
	upstreamClient *upstream.Client,
	wsServer *websocket.Server,
	cfg *config.Config,
	log *logger.Logger,
) *Handler {
	return &Handler{
		catalog:      catalog,
		player:       player,
		sessions:     sessions,
		reservations: reservations,
		actions:      actionService,
		tracker:      tracker,
		alerter:      alerter,
		handoffs:     handoffs,
		upstream:     upstreamClient,
		wsServer:     wsServer,
		config:       cfg,
		logger:       log.Named("api-handler"),
	}
}

// GetHealth handles health check requests
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "concierge",
	})
}

// GetContact returns the fixed contact surface: the concierge phone line
// and the optional voice-agent id.
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"phone_number":   h.config.Contact.PhoneNumber,
		"voice_agent_id": h.config.Contact.VoiceAgentID,
	})
}

// HandleWebSocket upgrades a client onto the playback broadcast stream.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	h.wsServer.HandleConnection(w, r)
}

// respondJSON writes a JSON response with the given status code.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", logger.Error(err))
	}
}

// respondError writes an inline JSON error. Handlers degrade rather than
// fault: missing optional data renders placeholders, and only genuinely
// unanswerable requests reach here.
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON parses a request body into dst, answering 400 on failure.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
