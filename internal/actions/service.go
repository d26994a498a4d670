package actions

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caretrip/concierge/internal/reservation"
	"github.com/caretrip/concierge/internal/session"
	"github.com/caretrip/concierge/internal/storage/sqlite"
	"github.com/caretrip/concierge/pkg/logger"
)

// Result is the outcome of an executed action. Failures still produce an
// action record so the history shows what was attempted.
type Result struct {
	Success  bool           `json:"success"`
	ActionID string         `json:"action_id"`
	Message  string         `json:"message,omitempty"`
	Error    string         `json:"error,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// Service executes helper actions against the reservation store and records
// each attempt.
type Service struct {
	reservations *sqlite.ReservationStorage
	store        *sqlite.ActionStorage
	sessions     *session.Store
	logger       *logger.Logger
}

// NewService creates a new action service.
func NewService(
	reservations *sqlite.ReservationStorage,
	store *sqlite.ActionStorage,
	sessions *session.Store,
	log *logger.Logger,
) *Service {
	return &Service{
		reservations: reservations,
		store:        store,
		sessions:     sessions,
		logger:       log.Named("actions"),
	}
}

// HistoryEntry is one line of the action history shown to helpers.
type HistoryEntry struct {
	ID            string         `json:"id"`
	ActionType    string         `json:"action_type"`
	DisplayName   string         `json:"display_name"`
	ActionData    map[string]any `json:"action_data"`
	Status        string         `json:"status"`
	FamilyNotes   string         `json:"family_notes"`
	ResultMessage string         `json:"result_message"`
	CreatedAt     string         `json:"created_at"`
}

// History returns the action history for a session, oldest first.
func (s *Service) History(sessionID string) ([]HistoryEntry, error) {
	records, err := s.store.BySession(sessionID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, HistoryEntry{
			ID:            r.ID,
			ActionType:    r.ActionType,
			DisplayName:   DisplayName(r.ActionType),
			ActionData:    r.ActionData,
			Status:        r.Status,
			FamilyNotes:   r.FamilyNotes,
			ResultMessage: r.ResultMessage,
			CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		})
	}
	return entries, nil
}

// Execute dispatches an action by type. Unknown types fail without a record.
func (s *Service) Execute(sess session.Session, actionType string, params map[string]any, notes string) (Result, error) {
	switch actionType {
	case TypeChangeFlight:
		return s.ChangeFlight(sess, stringParam(params, "new_flight_id"), notes)
	case TypeCancelFlight:
		return s.CancelFlight(sess, stringParam(params, "reason"), notes)
	case TypeSelectSeat:
		return s.SelectSeat(sess, stringParam(params, "seat"), stringParam(params, "flight_segment_id"), notes)
	case TypeAddBags:
		return s.AddBags(sess, intParam(params, "bag_count", 1), notes)
	case TypeRequestWheelchair:
		return s.RequestWheelchair(sess, stringParam(params, "assistance_type"), notes)
	}
	return Result{}, fmt.Errorf("unknown action type %q", actionType)
}

// ChangeFlight rebooks the first segment onto an alternative flight and
// marks the reservation changed.
func (s *Service) ChangeFlight(sess session.Session, newFlightID, notes string) (Result, error) {
	res, fail := s.loadReservation(sess, TypeChangeFlight, map[string]any{"new_flight_id": newFlightID}, notes)
	if fail != nil {
		return *fail, nil
	}

	first, ok := res.FirstSegment()
	if !ok {
		return s.failed(sess.ID, TypeChangeFlight,
			map[string]any{"new_flight_id": newFlightID}, notes, "No flight segment found"), nil
	}

	originalFlight := map[string]any{
		"flight_number":  first.Flight.FlightNumber,
		"origin":         first.Flight.Origin,
		"destination":    first.Flight.Destination,
		"departure_time": first.Flight.DepartureTime.Format(time.RFC3339),
		"arrival_time":   first.Flight.ArrivalTime.Format(time.RFC3339),
		"seat":           seatOrPlaceholder(first.Seat),
	}

	// The new flight comes from the synthetic alternatives for the route the
	// next day; an unmatched id falls back to the first option.
	targetDate := first.Flight.DepartureTime.Add(24 * time.Hour)
	alternatives := reservation.AlternativeFlights(first.Flight.Origin, first.Flight.Destination, targetDate)

	var newFlight *reservation.Alternative
	for i := range alternatives {
		if alternatives[i].ID == newFlightID || alternatives[i].FlightNumber == newFlightID {
			newFlight = &alternatives[i]
			break
		}
	}
	if newFlight == nil && len(alternatives) > 0 {
		newFlight = &alternatives[0]
	}
	if newFlight == nil {
		return s.failed(sess.ID, TypeChangeFlight,
			map[string]any{"new_flight_id": newFlightID}, notes, "New flight not found"), nil
	}

	if err := s.reservations.UpdateStatus(res.ID, reservation.StatusChanged); err != nil {
		return Result{}, err
	}

	record := s.executed(sess.ID, TypeChangeFlight,
		map[string]any{
			"original_flight": originalFlight,
			"new_flight":      newFlight,
		},
		notes,
		fmt.Sprintf("Flight changed from %s to %s", first.Flight.FlightNumber, newFlight.FlightNumber),
	)

	return Result{
		Success:  true,
		ActionID: record.ID,
		Message:  record.ResultMessage,
		Data: map[string]any{
			"original_flight": originalFlight,
			"new_flight":      newFlight,
		},
	}, nil
}

// CancelFlight cancels the reservation. Cancelling twice fails.
func (s *Service) CancelFlight(sess session.Session, reason, notes string) (Result, error) {
	res, fail := s.loadReservation(sess, TypeCancelFlight, map[string]any{"reason": reason}, notes)
	if fail != nil {
		return *fail, nil
	}

	if res.Status == reservation.StatusCancelledRes {
		return s.failed(sess.ID, TypeCancelFlight,
			map[string]any{"reason": reason}, notes, "Reservation already cancelled"), nil
	}

	cancelled := make([]map[string]any, 0, len(res.Segments))
	for _, seg := range res.Segments {
		cancelled = append(cancelled, map[string]any{
			"flight_number":  seg.Flight.FlightNumber,
			"origin":         seg.Flight.Origin,
			"destination":    seg.Flight.Destination,
			"departure_time": seg.Flight.DepartureTime.Format(time.RFC3339),
		})
	}

	if err := s.reservations.UpdateStatus(res.ID, reservation.StatusCancelledRes); err != nil {
		return Result{}, err
	}

	record := s.executed(sess.ID, TypeCancelFlight,
		map[string]any{
			"reason":            reason,
			"cancelled_flights": cancelled,
		},
		notes,
		fmt.Sprintf("Reservation %s has been cancelled", res.ConfirmationCode),
	)

	return Result{
		Success:  true,
		ActionID: record.ID,
		Message:  record.ResultMessage,
		Data:     map[string]any{"cancelled_flights": cancelled},
	}, nil
}

// SelectSeat assigns a seat on a segment (the first when none is named).
func (s *Service) SelectSeat(sess session.Session, seat, segmentID, notes string) (Result, error) {
	seat = strings.ToUpper(strings.TrimSpace(seat))
	res, fail := s.loadReservation(sess, TypeSelectSeat, map[string]any{"seat": seat}, notes)
	if fail != nil {
		return *fail, nil
	}

	var segment *reservation.Segment
	if segmentID != "" {
		for i := range res.Segments {
			if res.Segments[i].ID == segmentID {
				segment = &res.Segments[i]
				break
			}
		}
		if segment == nil {
			return s.failed(sess.ID, TypeSelectSeat,
				map[string]any{"seat": seat, "flight_segment_id": segmentID}, notes,
				"Flight segment not found"), nil
		}
	} else {
		first, ok := res.FirstSegment()
		if !ok {
			return s.failed(sess.ID, TypeSelectSeat,
				map[string]any{"seat": seat}, notes, "No flight segment found"), nil
		}
		segment = first
	}

	oldSeat := segment.Seat
	if err := s.reservations.UpdateSeat(segment.ID, seat); err != nil {
		return Result{}, err
	}

	record := s.executed(sess.ID, TypeSelectSeat,
		map[string]any{
			"old_seat":      oldSeat,
			"new_seat":      seat,
			"flight_number": segment.Flight.FlightNumber,
		},
		notes,
		fmt.Sprintf("Seat changed to %s on flight %s", seat, segment.Flight.FlightNumber),
	)

	return Result{
		Success:  true,
		ActionID: record.ID,
		Message:  record.ResultMessage,
		Data: map[string]any{
			"old_seat": oldSeat,
			"new_seat": seat,
		},
	}, nil
}

// AddBags adds checked bags, accumulating the count in the session context.
func (s *Service) AddBags(sess session.Session, bagCount int, notes string) (Result, error) {
	_, fail := s.loadReservation(sess, TypeAddBags, map[string]any{"bag_count": bagCount}, notes)
	if fail != nil {
		return *fail, nil
	}

	total := bagCount
	if prev, ok := sess.Context["checked_bags"].(int); ok {
		total += prev
	} else if prev, ok := sess.Context["checked_bags"].(float64); ok {
		total += int(prev)
	}
	if err := s.sessions.SetContext(sess.ID, "checked_bags", total); err != nil {
		return Result{}, err
	}

	record := s.executed(sess.ID, TypeAddBags,
		map[string]any{
			"bags_added": bagCount,
			"total_bags": total,
		},
		notes,
		fmt.Sprintf("Added %d checked bag(s). Total: %d bags", bagCount, total),
	)

	return Result{
		Success:  true,
		ActionID: record.ID,
		Message:  record.ResultMessage,
		Data: map[string]any{
			"bags_added": bagCount,
			"total_bags": total,
		},
	}, nil
}

// RequestWheelchair records a mobility assistance request on the session.
func (s *Service) RequestWheelchair(sess session.Session, assistanceType, notes string) (Result, error) {
	if assistanceType == "" {
		assistanceType = "wheelchair"
	}

	_, fail := s.loadReservation(sess, TypeRequestWheelchair, map[string]any{"assistance_type": assistanceType}, notes)
	if fail != nil {
		return *fail, nil
	}

	if err := s.sessions.SetContext(sess.ID, "wheelchair_assistance", map[string]any{
		"type":         assistanceType,
		"requested_at": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return Result{}, err
	}

	names := map[string]string{
		"wheelchair":      "Wheelchair",
		"wheelchair_ramp": "Wheelchair with Ramp",
		"escort":          "Escort Assistance",
	}
	name, ok := names[assistanceType]
	if !ok {
		name = assistanceType
	}

	record := s.executed(sess.ID, TypeRequestWheelchair,
		map[string]any{"assistance_type": assistanceType},
		notes,
		fmt.Sprintf("%s assistance has been requested", name),
	)

	return Result{
		Success:  true,
		ActionID: record.ID,
		Message:  record.ResultMessage,
		Data:     map[string]any{"assistance_type": assistanceType},
	}, nil
}

// loadReservation fetches the session's reservation, recording a failed
// action when the session has none.
func (s *Service) loadReservation(sess session.Session, actionType string, data map[string]any, notes string) (*reservation.Reservation, *Result) {
	if sess.ConfirmationCode == "" {
		result := s.failed(sess.ID, actionType, data, notes, "No reservation found")
		return nil, &result
	}

	res, err := s.reservations.GetByCode(sess.ConfirmationCode)
	if err != nil {
		result := s.failed(sess.ID, actionType, data, notes, "No reservation found")
		return nil, &result
	}
	return res, nil
}

// executed records a successful action.
func (s *Service) executed(sessionID, actionType string, data map[string]any, notes, message string) *sqlite.ActionRecord {
	record := &sqlite.ActionRecord{
		ID:            uuid.NewString(),
		SessionID:     sessionID,
		ActionType:    actionType,
		ActionData:    data,
		Status:        "executed",
		FamilyNotes:   notes,
		ResultMessage: message,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.Insert(record); err != nil {
		s.logger.Error("Failed to store action record", logger.Error(err))
	}
	s.logger.Info("Family action executed",
		logger.String("session_id", sessionID),
		logger.String("action_type", actionType))
	return record
}

// failed records a failed action and returns the error result.
func (s *Service) failed(sessionID, actionType string, data map[string]any, notes, errMessage string) Result {
	record := &sqlite.ActionRecord{
		ID:            uuid.NewString(),
		SessionID:     sessionID,
		ActionType:    actionType,
		ActionData:    data,
		Status:        "failed",
		FamilyNotes:   notes,
		ResultMessage: errMessage,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.Insert(record); err != nil {
		s.logger.Error("Failed to store action record", logger.Error(err))
	}
	s.logger.Warn("Family action failed",
		logger.String("session_id", sessionID),
		logger.String("action_type", actionType),
		logger.String("reason", errMessage))
	return Result{
		Success:  false,
		ActionID: record.ID,
		Error:    errMessage,
	}
}

func seatOrPlaceholder(seat string) string {
	if seat == "" {
		return "Not assigned"
	}
	return seat
}

func stringParam(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func intParam(params map[string]any, key string, fallback int) int {
	switch v := params[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}
