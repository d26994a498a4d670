package status

import (
	"context"
	"sync"
	"time"

	"github.com/caretrip/concierge/pkg/logger"
)

// Refresher re-projects a departure countdown on a fixed period, and once
// immediately whenever the departure input changes. Projection is a pure
// recompute from the wall clock, so a tick that lands twice is harmless.
type Refresher struct {
	mu        sync.Mutex
	departure time.Time
	set       bool
	current   Countdown

	interval time.Duration
	notify   func(Countdown)
	logger   *logger.Logger
}

// NewRefresher creates a refresher with the given re-projection period.
// notify may be nil.
func NewRefresher(interval time.Duration, notify func(Countdown), log *logger.Logger) *Refresher {
	return &Refresher{
		interval: interval,
		notify:   notify,
		logger:   log.Named("countdown"),
	}
}

// SetDeparture changes the watched departure time and recomputes at once.
func (r *Refresher) SetDeparture(departure time.Time) {
	r.mu.Lock()
	r.departure = departure
	r.set = true
	r.mu.Unlock()
	r.refresh()
}

// Current returns the most recently projected countdown.
func (r *Refresher) Current() Countdown {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Run re-projects every interval until ctx is cancelled. Blocking; callers
// run it in a goroutine.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("Countdown refresher stopped")
			return
		case <-ticker.C:
			r.refresh()
		}
	}
}

func (r *Refresher) refresh() {
	r.mu.Lock()
	if !r.set {
		r.mu.Unlock()
		return
	}
	next := Project(r.departure, time.Now())
	changed := next != r.current
	r.current = next
	r.mu.Unlock()

	if changed && r.notify != nil {
		r.notify(next)
	}
}
