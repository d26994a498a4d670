package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caretrip/concierge/internal/scenario"
)

// GetScenarios lists the demo scenario catalog.
func (h *Handler) GetScenarios(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"scenarios": h.catalog.Scenarios(),
	})
}

// GetScenarioByID returns one demo scenario.
func (h *Handler) GetScenarioByID(w http.ResponseWriter, r *http.Request) {
	s, ok := h.catalog.ByID(chi.URLParam(r, "id"))
	if !ok {
		h.respondError(w, http.StatusNotFound, "Scenario not found")
		return
	}
	h.respondJSON(w, http.StatusOK, s)
}

// GetScenarioReservation returns a scenario's reservation in the dashboard
// shape, including the narrowed flight statuses.
func (h *Handler) GetScenarioReservation(w http.ResponseWriter, r *http.Request) {
	s, ok := h.catalog.ByID(chi.URLParam(r, "id"))
	if !ok {
		h.respondError(w, http.StatusNotFound, "Scenario not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"reservation": scenario.ToReservation(s),
	})
}

// SelectScenario starts demo playback of a scenario from the top.
func (h *Handler) SelectScenario(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ScenarioID string `json:"scenario_id"`
	}
	if !h.decodeJSON(w, r, &req) {
		return
	}

	s, ok := h.catalog.ByID(req.ScenarioID)
	if !ok {
		h.respondError(w, http.StatusNotFound, "Scenario not found")
		return
	}

	h.player.Select(s)
	h.respondJSON(w, http.StatusOK, h.player.Snapshot())
}

// PausePlayback freezes the demo transcript.
func (h *Handler) PausePlayback(w http.ResponseWriter, r *http.Request) {
	h.player.Pause()
	h.respondJSON(w, http.StatusOK, h.player.Snapshot())
}

// ResumePlayback continues a paused demo transcript.
func (h *Handler) ResumePlayback(w http.ResponseWriter, r *http.Request) {
	h.player.Resume()
	h.respondJSON(w, http.StatusOK, h.player.Snapshot())
}

// RestartPlayback replays the current scenario from the top.
func (h *Handler) RestartPlayback(w http.ResponseWriter, r *http.Request) {
	h.player.Restart()
	h.respondJSON(w, http.StatusOK, h.player.Snapshot())
}

// GetPlaybackState returns the player snapshot.
func (h *Handler) GetPlaybackState(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.player.Snapshot())
}
