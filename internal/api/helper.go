package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/caretrip/concierge/internal/actions"
	"github.com/caretrip/concierge/internal/airport"
	"github.com/caretrip/concierge/internal/handoff"
	"github.com/caretrip/concierge/internal/location"
	"github.com/caretrip/concierge/internal/reservation"
	"github.com/caretrip/concierge/internal/seats"
	"github.com/caretrip/concierge/internal/session"
	"github.com/caretrip/concierge/internal/storage/sqlite"
	"github.com/caretrip/concierge/pkg/logger"
)

// GetHelperSession returns everything the family helper view renders: the
// session, its reservation, and the conversation so far.
func (h *Handler) GetHelperSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.helperSession(w, r)
	if !ok {
		return
	}

	var reservationData any
	if res, err := h.sessionReservation(sess); err == nil {
		reservationData = h.reservationPayload(res)
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"session":     sess,
		"reservation": reservationData,
		"messages":    sess.Messages,
	})
}

// SendHelperSuggestion appends a family member's suggestion to the
// conversation.
func (h *Handler) SendHelperSuggestion(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.helperSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if !h.decodeJSON(w, r, &req) {
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		h.respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	if _, err := h.sessions.AppendMessage(sess.ID, session.RoleFamily, req.Message); err != nil {
		h.respondSessionError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// GetHelperSeats returns the seat map for the helper seat picker. With a
// live backend configured the map comes from upstream; otherwise it is the
// synthetic cabin.
func (h *Handler) GetHelperSeats(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "linkID")
	sess, ok := h.helperSession(w, r)
	if !ok {
		return
	}

	if h.upstream.Enabled() {
		seatMap, err := h.upstream.HelperSeats(r.Context(), linkID)
		if err == nil {
			h.respondJSON(w, http.StatusOK, seatMap)
			return
		}
		h.logger.Warn("Upstream seat map unavailable, using local cabin",
			logger.Error(err))
	}

	res, err := h.sessionReservation(sess)
	if err != nil {
		h.respondJSON(w, http.StatusOK, seats.Build("", ""))
		return
	}
	h.respondJSON(w, http.StatusOK, seats.ForReservation(res))
}

// GetHelperActions lists the available actions and the action history.
func (h *Handler) GetHelperActions(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.helperSession(w, r)
	if !ok {
		return
	}

	res, _ := h.sessionReservation(sess)

	history, err := h.actions.History(sess.ID)
	if err != nil {
		h.logger.Error("Failed to load action history", logger.Error(err))
		history = []actions.HistoryEntry{}
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"available_actions": actions.Available(res),
		"history":           history,
	})
}

// ExecuteHelperAction runs one family action. Failures come back with
// success=false and an action record, not an HTTP error, so the dashboard
// keeps its modal open and shows the reason.
func (h *Handler) ExecuteHelperAction(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "linkID")
	sess, ok := h.helperSession(w, r)
	if !ok {
		return
	}

	var req struct {
		ActionType string         `json:"action_type"`
		Params     map[string]any `json:"params"`
		Notes      string         `json:"notes"`
	}
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if h.upstream.Enabled() {
		resp, err := h.upstream.ExecuteAction(r.Context(), linkID, req.ActionType, req.Params, req.Notes)
		if err == nil {
			h.respondJSON(w, http.StatusOK, resp)
			return
		}
		h.logger.Warn("Upstream action execution unavailable, executing locally",
			logger.Error(err))
	}

	result, err := h.actions.Execute(sess, req.ActionType, req.Params, req.Notes)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// UpdateLocation records a passenger position for a session and evaluates
// whether the movement warrants a helper alert.
func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		h.respondSessionError(w, err)
		return
	}

	var req struct {
		Lat      float64 `json:"lat"`
		Lng      float64 `json:"lng"`
		Accuracy float64 `json:"accuracy"`
	}
	if !h.decodeJSON(w, r, &req) {
		return
	}

	sample, stored := h.tracker.Update(sessionID, req.Lat, req.Lng, req.Accuracy)

	report := h.locationReport(sess)
	if stored && report.Metrics != nil {
		res, err := h.sessionReservation(sess)
		if err == nil {
			alert, err := h.alerter.Evaluate(sessionID, report,
				res.Passenger.FirstName, res.Passenger.LanguagePreference)
			if err != nil {
				h.logger.Error("Alert evaluation failed", logger.Error(err))
			} else if alert != nil {
				report.Alert = alert
				h.wsServer.Broadcast("location_alert", alert)
			}
		}
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"stored": stored,
		"sample": sample,
		"report": report,
	})
}

// GetHelperLocation returns the location report for the helper map.
func (h *Handler) GetHelperLocation(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.helperSession(w, r)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, h.locationPayload(sess))
}

// RefreshHelperLocation re-fetches location metrics, preferring the live
// backend when one is configured.
func (h *Handler) RefreshHelperLocation(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "linkID")
	sess, ok := h.helperSession(w, r)
	if !ok {
		return
	}

	if h.upstream.Enabled() {
		report, err := h.upstream.RefreshLocation(r.Context(), linkID)
		if err == nil {
			h.respondJSON(w, http.StatusOK, report)
			return
		}
		h.logger.Warn("Upstream location unavailable, using local tracker",
			logger.Error(err))
	}

	h.respondJSON(w, http.StatusOK, h.locationPayload(sess))
}

// AcknowledgeAlert marks a location alert as seen by the helper.
func (h *Handler) AcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	alertID := chi.URLParam(r, "alertID")
	found, err := h.alerter.Acknowledge(alertID)
	if err != nil {
		h.logger.Error("Failed to acknowledge alert", logger.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if !found {
		h.respondError(w, http.StatusNotFound, "Alert not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// CreateHandoff escalates a conversation to a human agent.
func (h *Handler) CreateHandoff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID  string `json:"session_id"`
		Reason     string `json:"reason"`
		Transcript []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"transcript"`
	}
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if h.upstream.Enabled() {
		transcript := make([]map[string]string, 0, len(req.Transcript))
		for _, line := range req.Transcript {
			transcript = append(transcript, map[string]string{
				"role":    line.Role,
				"content": line.Content,
			})
		}
		resp, err := h.upstream.CreateHandoff(r.Context(), transcript, req.Reason)
		if err == nil {
			h.respondJSON(w, http.StatusOK, resp)
			return
		}
		h.logger.Warn("Upstream handoff unavailable, creating local dossier",
			logger.Error(err))
	}

	transcript := make([]handoff.TranscriptLine, 0, len(req.Transcript))
	for _, line := range req.Transcript {
		transcript = append(transcript, handoff.TranscriptLine{Role: line.Role, Content: line.Content})
	}

	var res *reservation.Reservation
	if req.SessionID != "" {
		if sess, err := h.sessions.Get(req.SessionID); err == nil {
			res, _ = h.sessionReservation(sess)
			// The session conversation stands in for an empty client
			// transcript.
			if len(transcript) == 0 {
				for _, msg := range sess.Messages {
					transcript = append(transcript, handoff.TranscriptLine{
						Role:    string(msg.Role),
						Content: msg.Content,
					})
				}
			}
		}
	}

	dossier := h.handoffs.Create(transcript, req.Reason, res)
	h.respondJSON(w, http.StatusOK, map[string]any{
		"dossier_id":     dossier.ID,
		"bridge_message": dossier.BridgeMessage,
		"phone_number":   h.config.Contact.PhoneNumber,
	})
}

// helperSession resolves the {linkID} path parameter to its session.
func (h *Handler) helperSession(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	sess, err := h.sessions.ByHelperLink(chi.URLParam(r, "linkID"))
	if err != nil {
		h.respondSessionError(w, err)
		return session.Session{}, false
	}
	return sess, true
}

// sessionReservation loads the reservation attached to a session.
func (h *Handler) sessionReservation(sess session.Session) (*reservation.Reservation, error) {
	if sess.ConfirmationCode == "" {
		return nil, sqlite.ErrReservationNotFound
	}
	return h.reservations.GetByCode(sess.ConfirmationCode)
}

// gateFix resolves a gate code to coordinates via the static airport data.
func (h *Handler) gateFix(airportCode, gate string) (*location.GateFix, bool) {
	g, ok := airport.GateLocation(airportCode, gate)
	if !ok {
		return nil, false
	}
	return &location.GateFix{
		Point:       location.Point{Lat: g.Lat, Lng: g.Lng},
		Gate:        gate,
		Terminal:    g.Terminal,
		Approximate: g.Approximate,
	}, true
}

// locationReport builds the local location report for a session using its
// reservation's first-segment gate. The newest unacknowledged alert rides
// along so a helper who missed the live broadcast can still acknowledge it.
func (h *Handler) locationReport(sess session.Session) location.Report {
	var report location.Report

	res, err := h.sessionReservation(sess)
	if err != nil {
		report = h.tracker.BuildReport(sess.ID, nil, "", time.Time{}, "en")
	} else if first, ok := res.FirstSegment(); !ok {
		report = h.tracker.BuildReport(sess.ID, nil, "", time.Time{}, res.Passenger.LanguagePreference)
	} else {
		var fix *location.GateFix
		if first.Flight.Gate != "" {
			if gate, found := h.gateFix(first.Flight.Origin, first.Flight.Gate); found {
				fix = gate
			}
		}
		report = h.tracker.BuildReport(sess.ID, fix, first.Flight.Origin,
			first.Flight.DepartureTime, res.Passenger.LanguagePreference)
	}

	if alert, err := h.alerter.Unacknowledged(sess.ID); err != nil {
		h.logger.Error("Failed to load unacknowledged alert", logger.Error(err))
	} else if alert != nil {
		report.Alert = alert
	}
	return report
}

// locationPayload wraps the report with map projection coordinates for the
// schematic dashboard map.
func (h *Handler) locationPayload(sess session.Session) map[string]any {
	report := h.locationReport(sess)

	var passengerPoint, gatePoint *location.Point
	if report.PassengerLocation != nil {
		passengerPoint = &report.PassengerLocation.Point
	}
	if report.GateLocation != nil {
		gatePoint = &report.GateLocation.Point
	}
	passengerPos, gatePos := location.ProjectMap(passengerPoint, gatePoint)

	var status location.AlertStatus
	if report.Metrics != nil {
		status = report.Metrics.AlertStatus
	}

	return map[string]any{
		"report": report,
		"map": map[string]any{
			"passenger": passengerPos,
			"gate":      gatePos,
		},
		"style": location.StyleFor(status),
	}
}
