// Package handoff builds the dossier a human agent receives when a
// conversation is escalated out of the automated concierge.
package handoff

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/caretrip/concierge/internal/reservation"
	"github.com/caretrip/concierge/pkg/logger"
)

// TranscriptLine is one conversation line carried into the dossier.
type TranscriptLine struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Dossier is the context package handed to a human agent.
type Dossier struct {
	ID            string           `json:"id"`
	Reason        string           `json:"reason"`
	PassengerName string           `json:"passenger_name,omitempty"`
	FlightNumber  string           `json:"flight_number,omitempty"`
	Route         string           `json:"route,omitempty"`
	Transcript    []TranscriptLine `json:"transcript"`
	BridgeMessage string           `json:"bridge_message"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Repository keeps dossiers for the process lifetime. It is passed
// explicitly to whoever needs it rather than living as a package global.
type Repository struct {
	mu       sync.Mutex
	dossiers map[string]*Dossier
	logger   *logger.Logger
}

// NewRepository creates an empty dossier repository.
func NewRepository(log *logger.Logger) *Repository {
	return &Repository{
		dossiers: make(map[string]*Dossier),
		logger:   log.Named("handoff"),
	}
}

// Create builds and stores a dossier from a conversation transcript, an
// escalation reason, and whatever reservation context is available.
func (r *Repository) Create(transcript []TranscriptLine, reason string, res *reservation.Reservation) *Dossier {
	d := &Dossier{
		ID:         uuid.NewString(),
		Reason:     reason,
		Transcript: append([]TranscriptLine(nil), transcript...),
		CreatedAt:  time.Now().UTC(),
	}

	if res != nil {
		d.PassengerName = res.Passenger.FullName()
		if first, ok := res.FirstSegment(); ok {
			d.FlightNumber = first.Flight.FlightNumber
			d.Route = fmt.Sprintf("%s to %s", first.Flight.Origin, first.Flight.Destination)
		}
	}
	d.BridgeMessage = bridgeMessage(d)

	r.mu.Lock()
	r.dossiers[d.ID] = d
	r.mu.Unlock()

	r.logger.Info("Handoff dossier created",
		logger.String("dossier_id", d.ID),
		logger.String("reason", reason))
	return d
}

// Get returns a stored dossier.
func (r *Repository) Get(id string) (*Dossier, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.dossiers[id]
	return d, ok
}

// bridgeMessage summarizes the dossier in one line for the receiving agent.
func bridgeMessage(d *Dossier) string {
	var b strings.Builder
	b.WriteString("Transferring caller")
	if d.PassengerName != "" {
		fmt.Fprintf(&b, " %s", d.PassengerName)
	}
	if d.FlightNumber != "" {
		fmt.Fprintf(&b, " on flight %s", d.FlightNumber)
	}
	if d.Route != "" {
		fmt.Fprintf(&b, " (%s)", d.Route)
	}
	if d.Reason != "" {
		fmt.Fprintf(&b, ". Reason: %s", d.Reason)
	} else {
		b.WriteString(". Reason: assistance requested")
	}
	fmt.Fprintf(&b, ". Conversation history attached (%d messages).", len(d.Transcript))
	return b.String()
}
