// Package status projects a departure timestamp into the dashboard's
// countdown display.
package status

import (
	"fmt"
	"time"
)

// Countdown is the rendered time-to-departure.
type Countdown struct {
	Display string `json:"display"`
	Urgent  bool   `json:"urgent"`
}

// Project renders the countdown for a departure at wall-clock now. The
// ladder, top to bottom: already departed; more than a day out; hours out;
// minutes out. Only the minutes-out rung is urgent. Hours and minutes are
// floor-divided from the millisecond difference; remainder hours wrap at 24.
// The red-vs-purple alarm styling downstream keys off Urgent, so the rungs
// must not be reordered.
func Project(departure, now time.Time) Countdown {
	diff := departure.Sub(now)
	if diff <= 0 {
		return Countdown{Display: "Departed"}
	}

	ms := diff.Milliseconds()
	hours := ms / (1000 * 60 * 60)
	minutes := ms / (1000 * 60) % 60

	switch {
	case hours > 24:
		return Countdown{Display: fmt.Sprintf("%dd %dh", hours/24, hours%24)}
	case hours > 0:
		return Countdown{Display: fmt.Sprintf("%dh %dm", hours, minutes)}
	default:
		return Countdown{Display: fmt.Sprintf("%dm", minutes), Urgent: true}
	}
}
