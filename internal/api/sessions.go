package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/caretrip/concierge/internal/reservation"
	"github.com/caretrip/concierge/internal/session"
	"github.com/caretrip/concierge/internal/status"
	"github.com/caretrip/concierge/pkg/logger"
)

// CreateSession starts a new concierge session.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()
	h.respondJSON(w, http.StatusOK, map[string]any{
		"session":  sess,
		"greeting": "Hello! I'm your airline concierge. How can I help you today?",
	})
}

// GetSession returns session details.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.respondSessionError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, sess)
}

// AttachReservation binds a looked-up reservation to a session.
func (h *Handler) AttachReservation(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	var req struct {
		ConfirmationCode string `json:"confirmation_code"`
	}
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.reservations.GetByCode(req.ConfirmationCode)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	if err := h.sessions.AttachReservation(sessionID, res.ConfirmationCode); err != nil {
		h.respondSessionError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"reservation": h.reservationPayload(res),
	})
}

// AppendMessage adds a conversation line to a session.
func (h *Handler) AppendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	var req struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		h.respondError(w, http.StatusBadRequest, "content is required")
		return
	}

	role := session.Role(req.Role)
	switch role {
	case session.RoleUser, session.RoleAssistant, session.RoleFamily:
	default:
		role = session.RoleUser
	}

	msg, err := h.sessions.AppendMessage(sessionID, role, req.Content)
	if err != nil {
		h.respondSessionError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, msg)
}

// CreateHelperLink issues the shareable family link for a session.
func (h *Handler) CreateHelperLink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if !h.decodeJSON(w, r, &req) {
		return
	}

	link, expiresAt, err := h.sessions.CreateHelperLink(req.SessionID)
	if err != nil {
		h.respondSessionError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"helper_link": link,
		"expires_at":  expiresAt.Format(time.RFC3339),
	})
}

// respondSessionError maps session store errors to HTTP statuses. Expired
// links answer 410 so clients can distinguish "never existed" from
// "no longer valid".
func (h *Handler) respondSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, session.ErrExpired):
		h.respondError(w, http.StatusGone, "Session expired")
	case errors.Is(err, session.ErrLinkUnknown):
		h.respondError(w, http.StatusNotFound, "Helper link not found")
	case errors.Is(err, session.ErrLinkExpired):
		h.respondError(w, http.StatusGone, "Helper link has expired")
	default:
		h.logger.Error("Session operation failed", logger.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal error")
	}
}

// reservationPayload decorates a reservation with presentation fields:
// placeholder strings for absent data and the departure countdown for the
// first segment.
func (h *Handler) reservationPayload(res *reservation.Reservation) map[string]any {
	payload := map[string]any{
		"reservation": res,
		"loyalty":     loyaltyOrPlaceholder(res.Passenger.AAdvantageNumber),
	}

	if first, ok := res.FirstSegment(); ok {
		countdown := status.Project(first.Flight.DepartureTime, time.Now())
		payload["countdown"] = countdown
		payload["gate"] = gateOrPlaceholder(first.Flight.Gate)
		payload["seat"] = seatOrPlaceholder(first.Seat)
	}
	return payload
}

func gateOrPlaceholder(gate string) string {
	if gate == "" {
		return "TBD"
	}
	return gate
}

func seatOrPlaceholder(seat string) string {
	if seat == "" {
		return "Not assigned"
	}
	return seat
}

func loyaltyOrPlaceholder(number string) string {
	if number == "" {
		return "Not enrolled"
	}
	return number
}
