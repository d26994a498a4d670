// Package playback drives scripted demo conversations forward on a timer.
package playback

import (
	"sync"
	"time"

	"github.com/caretrip/concierge/internal/scenario"
	"github.com/caretrip/concierge/pkg/logger"
)

// State is the player's transport state.
type State string

const (
	StateIdle     State = "idle"
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateComplete State = "complete"
)

// Update describes one newly revealed transcript line. Event is non-empty
// for lines the host UI should banner.
type Update struct {
	ScenarioID string                  `json:"scenario_id"`
	State      State                   `json:"state"`
	Position   int                     `json:"position"`
	Message    scenario.TranscriptLine `json:"message"`
	Event      scenario.Event          `json:"event,omitempty"`
}

// Snapshot is a point-in-time copy of the player for the API layer.
type Snapshot struct {
	ScenarioID string                    `json:"scenario_id,omitempty"`
	State      State                     `json:"state"`
	Position   int                       `json:"position"`
	Revealed   []scenario.TranscriptLine `json:"revealed"`
}

// NotifyFunc receives reveal updates. It is called outside the player lock;
// implementations may block briefly but must not call back into the player.
type NotifyFunc func(Update)

// Player is the scripted-transcript state machine. A single timer goroutine
// advances it; all external access goes through the mutex. Selecting a new
// scenario bumps the generation counter so a stale timer tick from the
// previous loop can never mutate the new playback.
type Player struct {
	mu         sync.Mutex
	current    *scenario.DemoScenario
	state      State
	position   int
	elapsed    time.Duration // since the previous reveal
	revealed   []scenario.TranscriptLine
	generation uint64
	stop       chan struct{}

	tickInterval time.Duration
	notify       NotifyFunc
	logger       *logger.Logger
}

// NewPlayer creates an idle player. notify may be nil.
func NewPlayer(tickInterval time.Duration, notify NotifyFunc, log *logger.Logger) *Player {
	return &Player{
		state:        StateIdle,
		tickInterval: tickInterval,
		notify:       notify,
		logger:       log.Named("playback"),
	}
}

// Select starts playback of a scenario from the top, discarding any prior
// playback state. Lines with a zero delay (by convention the opening agent
// line) reveal immediately.
func (p *Player) Select(s *scenario.DemoScenario) {
	p.mu.Lock()
	p.stopLoopLocked()

	p.current = s
	p.state = StatePlaying
	p.position = 0
	p.elapsed = 0
	p.revealed = nil
	p.generation++

	updates := p.advanceLocked(0)

	gen := p.generation
	stop := make(chan struct{})
	p.stop = stop
	p.mu.Unlock()

	p.emit(updates)
	p.logger.Info("Scenario selected",
		logger.String("scenario_id", s.ID),
		logger.Int("transcript_len", len(s.Transcript)))

	go p.run(gen, stop)
}

// Pause freezes playback, keeping position and accumulated delay.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StatePlaying {
		p.state = StatePaused
	}
}

// Resume continues a paused playback.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StatePaused {
		p.state = StatePlaying
	}
}

// Restart replays the current scenario from the top.
func (p *Player) Restart() {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()
	if current != nil {
		p.Select(current)
	}
}

// Close stops the timer loop and returns the player to idle. Safe to call
// more than once.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLoopLocked()
	p.current = nil
	p.state = StateIdle
	p.position = 0
	p.elapsed = 0
	p.revealed = nil
}

// Snapshot returns a copy of the current playback state.
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := Snapshot{
		State:    p.state,
		Position: p.position,
		Revealed: make([]scenario.TranscriptLine, len(p.revealed)),
	}
	copy(snap.Revealed, p.revealed)
	if p.current != nil {
		snap.ScenarioID = p.current.ID
	}
	return snap
}

// run is the timer loop for one playback generation. It exits when the
// generation is superseded, the playback completes, or stop is closed.
func (p *Player) run(gen uint64, stop chan struct{}) {
	ticker := time.NewTicker(p.tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now

			p.mu.Lock()
			if p.generation != gen {
				// A newer Select won the race; this loop is dead.
				p.mu.Unlock()
				return
			}
			updates := p.advanceLocked(delta)
			done := p.state == StateComplete
			p.mu.Unlock()

			p.emit(updates)
			if done {
				return
			}
		}
	}
}

// advanceLocked moves playback forward by delta, revealing every line whose
// relative delay the accumulated elapsed time now covers. The overshoot
// carries into the next line's delay so timing never drifts. Caller holds
// the lock.
func (p *Player) advanceLocked(delta time.Duration) []Update {
	if p.state != StatePlaying || p.current == nil {
		return nil
	}

	p.elapsed += delta

	var updates []Update
	transcript := p.current.Transcript
	for p.position < len(transcript) {
		next := transcript[p.position]
		if p.elapsed < next.Delay() {
			break
		}
		p.elapsed -= next.Delay()
		p.revealed = append(p.revealed, next)
		p.position++
		updates = append(updates, Update{
			ScenarioID: p.current.ID,
			State:      p.state,
			Position:   p.position,
			Message:    next,
			Event:      next.Event,
		})
	}

	if p.position >= len(transcript) {
		p.state = StateComplete
		for i := range updates {
			if updates[i].Position == len(transcript) {
				updates[i].State = StateComplete
			}
		}
	}
	return updates
}

// stopLoopLocked closes the current timer loop, if any. Ticks already in
// flight are rejected by the generation check. Caller holds the lock.
func (p *Player) stopLoopLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

func (p *Player) emit(updates []Update) {
	if p.notify == nil {
		return
	}
	for _, u := range updates {
		p.notify(u)
	}
}
