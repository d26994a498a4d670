package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/caretrip/concierge/internal/airport"
	"github.com/caretrip/concierge/internal/reservation"
)

// LookupReservation finds a reservation by confirmation code, last name, or
// email.
func (h *Handler) LookupReservation(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("confirmation_code")
	lastName := r.URL.Query().Get("last_name")
	email := r.URL.Query().Get("email")

	var res *reservation.Reservation
	var err error
	switch {
	case code != "":
		res, err = h.reservations.GetByCode(code)
	case lastName != "":
		res, err = h.reservations.GetByLastName(lastName)
	case email != "":
		res, err = h.reservations.GetByEmail(email)
	default:
		h.respondError(w, http.StatusBadRequest, "confirmation_code, last_name, or email is required")
		return
	}

	if err != nil {
		h.respondError(w, http.StatusNotFound, "Reservation not found")
		return
	}
	h.respondJSON(w, http.StatusOK, h.reservationPayload(res))
}

// GetAlternativeFlights returns rebooking options for a route and date.
func (h *Handler) GetAlternativeFlights(w http.ResponseWriter, r *http.Request) {
	origin := strings.ToUpper(r.URL.Query().Get("origin"))
	destination := strings.ToUpper(r.URL.Query().Get("destination"))
	dateStr := r.URL.Query().Get("date")

	if origin == "" || destination == "" || dateStr == "" {
		h.respondError(w, http.StatusBadRequest, "origin, destination, and date are required")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"flights": reservation.AlternativeFlights(origin, destination, date),
	})
}

// GetAirports returns airport metadata, either one airport by code or the
// full covered set.
func (h *Handler) GetAirports(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.URL.Query().Get("code"))
	if code == "" {
		h.respondJSON(w, http.StatusOK, map[string]any{
			"airports": airport.Airports(),
		})
		return
	}

	fence, ok := airport.AirportGeofence(code)
	if !ok {
		h.respondError(w, http.StatusNotFound, "Airport not found: "+code)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"code": code,
		"name": fence.Name,
		"city": airport.CityName(code),
		"lat":  fence.Lat,
		"lng":  fence.Lng,
	})
}
