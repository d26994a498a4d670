package location

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caretrip/concierge/pkg/logger"
)

// AlertType distinguishes the two escalation levels sent to helpers.
type AlertType string

const (
	AlertRunningLate AlertType = "running_late"
	AlertUrgent      AlertType = "urgent"
)

// Cooldowns between repeat alerts of the same type. The urgent window is
// shorter so a passenger about to miss a flight re-alerts sooner.
const (
	runningLateCooldown = 10 * time.Minute
	urgentCooldown      = 5 * time.Minute
)

// AlertRecord is one alert sent for a session.
type AlertRecord struct {
	ID               string    `json:"id"`
	SessionID        string    `json:"session_id"`
	Type             AlertType `json:"type"`
	Message          string    `json:"message"`
	DistanceMeters   int       `json:"distance_meters"`
	WalkingMinutes   int       `json:"walking_minutes"`
	DepartureMinutes int       `json:"departure_minutes"`
	Acknowledged     bool      `json:"acknowledged"`
	CreatedAt        time.Time `json:"created_at"`
}

// AlertStore persists alert records. Implemented by the sqlite storage.
type AlertStore interface {
	Insert(record *AlertRecord) error
	LatestSince(sessionID string, alertType AlertType, since time.Time) (*AlertRecord, error)
	Unacknowledged(sessionID string) (*AlertRecord, error)
	Acknowledge(id string) (bool, error)
}

// Alerter decides when a location report warrants notifying the family
// helper, subject to per-type cooldowns.
type Alerter struct {
	store  AlertStore
	logger *logger.Logger
}

// NewAlerter creates an alerter backed by the given store.
func NewAlerter(store AlertStore, log *logger.Logger) *Alerter {
	return &Alerter{store: store, logger: log.Named("alerts")}
}

// Evaluate inspects a report's alert status and records the matching alert
// if its cooldown has lapsed. Returns nil when no alert is warranted or the
// cooldown is still active.
func (a *Alerter) Evaluate(sessionID string, report Report, firstName, language string) (*AlertRecord, error) {
	if report.Metrics == nil || report.GateLocation == nil {
		return nil, nil
	}

	gate := report.GateLocation.Gate
	if gate == "" {
		gate = "your gate"
	}

	switch report.Metrics.AlertStatus {
	case StatusUrgent:
		return a.send(sessionID, AlertUrgent, urgentCooldown, report,
			urgentMessage(firstName, gate, report.Metrics.WalkingTimeMinutes, report.Metrics.TimeToDepartureMinutes, language))
	case StatusWarning:
		return a.send(sessionID, AlertRunningLate, runningLateCooldown, report,
			runningLateMessage(firstName, gate, report.Metrics.WalkingTimeMinutes, report.Metrics.TimeToDepartureMinutes, language))
	}
	return nil, nil
}

// Acknowledge marks an alert as seen by the helper.
func (a *Alerter) Acknowledge(id string) (bool, error) {
	return a.store.Acknowledge(id)
}

// Unacknowledged returns the newest unacknowledged alert for a session.
func (a *Alerter) Unacknowledged(sessionID string) (*AlertRecord, error) {
	return a.store.Unacknowledged(sessionID)
}

func (a *Alerter) send(sessionID string, alertType AlertType, cooldown time.Duration, report Report, message string) (*AlertRecord, error) {
	recent, err := a.store.LatestSince(sessionID, alertType, time.Now().Add(-cooldown))
	if err != nil {
		return nil, fmt.Errorf("failed to check alert cooldown: %w", err)
	}
	if recent != nil {
		a.logger.Debug("Alert cooldown active",
			logger.String("session_id", sessionID),
			logger.String("alert_type", string(alertType)))
		return nil, nil
	}

	record := &AlertRecord{
		ID:               uuid.NewString(),
		SessionID:        sessionID,
		Type:             alertType,
		Message:          message,
		DistanceMeters:   report.Metrics.DistanceMeters,
		WalkingMinutes:   report.Metrics.WalkingTimeMinutes,
		DepartureMinutes: report.Metrics.TimeToDepartureMinutes,
		CreatedAt:        time.Now().UTC(),
	}
	if err := a.store.Insert(record); err != nil {
		return nil, fmt.Errorf("failed to store alert: %w", err)
	}

	a.logger.Info("Location alert sent",
		logger.String("session_id", sessionID),
		logger.String("alert_type", string(alertType)))
	return record, nil
}

func runningLateMessage(firstName, gate string, walkingMins, departureMins int, language string) string {
	if language == "es" {
		return fmt.Sprintf(
			"%s, puede estar llegando tarde a su puerta. La puerta %s esta a aproximadamente %d minutos caminando, y su vuelo sale en %d minutos. Por favor dirijase a la puerta ahora.",
			firstName, gate, walkingMins, departureMins)
	}
	return fmt.Sprintf(
		"%s, you may be running late for your gate. Gate %s is about %d minutes away, and your flight departs in %d minutes. Please head to your gate now.",
		firstName, gate, walkingMins, departureMins)
}

func urgentMessage(firstName, gate string, walkingMins, departureMins int, language string) string {
	if language == "es" {
		return fmt.Sprintf(
			"URGENTE: %s, puede perder su vuelo! La puerta %s cierra en %d minutos y usted esta a %d minutos de distancia. Por favor corra a su puerta inmediatamente!",
			firstName, gate, departureMins-15, walkingMins)
	}
	return fmt.Sprintf(
		"URGENT: %s, you may miss your flight! Gate %s closes in %d minutes and you are %d minutes away. Please hurry to your gate immediately!",
		firstName, gate, departureMins-15, walkingMins)
}
