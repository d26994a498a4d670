package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caretrip/concierge/internal/scenario"
	"github.com/caretrip/concierge/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "json"})
	require.NoError(t, err)
	return log
}

func threeLineScenario() *scenario.DemoScenario {
	return &scenario.DemoScenario{
		ID: "test",
		Transcript: []scenario.TranscriptLine{
			{Role: scenario.RoleAgent, Content: "first", DelayMs: 0},
			{Role: scenario.RoleUser, Content: "second", DelayMs: 2000},
			{Role: scenario.RoleAgent, Content: "third", DelayMs: 4000, Event: scenario.EventAlert},
		},
	}
}

// newStoppedPlayer builds a player whose timer loop is immediately halted so
// tests can drive advanceLocked deterministically.
func newStoppedPlayer(t *testing.T, s *scenario.DemoScenario, notify NotifyFunc) *Player {
	t.Helper()
	p := NewPlayer(10*time.Millisecond, notify, testLogger(t))
	p.Select(s)
	p.mu.Lock()
	p.stopLoopLocked()
	p.mu.Unlock()
	return p
}

func (p *Player) step(delta time.Duration) []Update {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.advanceLocked(delta)
}

func TestSelectRevealsZeroDelayLine(t *testing.T) {
	p := newStoppedPlayer(t, threeLineScenario(), nil)
	defer p.Close()

	snap := p.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	require.Len(t, snap.Revealed, 1)
	assert.Equal(t, "first", snap.Revealed[0].Content)
}

func TestRevealTiming(t *testing.T) {
	p := newStoppedPlayer(t, threeLineScenario(), nil)
	defer p.Close()

	// 2000ms in: second line due.
	p.step(2000 * time.Millisecond)
	snap := p.Snapshot()
	assert.Len(t, snap.Revealed, 2)
	assert.Equal(t, StatePlaying, snap.State)

	// 6000ms total (0 + 2000 + 4000): all three, complete.
	p.step(4000 * time.Millisecond)
	snap = p.Snapshot()
	assert.Len(t, snap.Revealed, 3)
	assert.Equal(t, StateComplete, snap.State)
}

func TestSingleTickRevealsMultipleDueLines(t *testing.T) {
	p := newStoppedPlayer(t, threeLineScenario(), nil)
	defer p.Close()

	updates := p.step(10 * time.Second)
	assert.Len(t, updates, 2)
	snap := p.Snapshot()
	assert.Len(t, snap.Revealed, 3)
	assert.Equal(t, StateComplete, snap.State)
}

func TestOvershootCarriesIntoNextDelay(t *testing.T) {
	p := newStoppedPlayer(t, threeLineScenario(), nil)
	defer p.Close()

	// 2500ms: second line revealed, 500ms already counted towards the third.
	p.step(2500 * time.Millisecond)
	assert.Len(t, p.Snapshot().Revealed, 2)

	p.step(3500 * time.Millisecond)
	snap := p.Snapshot()
	assert.Len(t, snap.Revealed, 3)
	assert.Equal(t, StateComplete, snap.State)
}

func TestPauseHoldsPositionAndElapsed(t *testing.T) {
	p := newStoppedPlayer(t, threeLineScenario(), nil)
	defer p.Close()

	p.step(1500 * time.Millisecond)
	p.Pause()

	// Ticks while paused must not advance anything.
	updates := p.step(time.Hour)
	assert.Empty(t, updates)
	assert.Len(t, p.Snapshot().Revealed, 1)
	assert.Equal(t, StatePaused, p.Snapshot().State)

	p.Resume()
	p.step(500 * time.Millisecond)
	assert.Len(t, p.Snapshot().Revealed, 2)
}

func TestIdenticalTicksAreIdempotent(t *testing.T) {
	p := newStoppedPlayer(t, threeLineScenario(), nil)
	defer p.Close()

	p.step(10 * time.Second)
	before := p.Snapshot()

	for i := 0; i < 5; i++ {
		updates := p.step(0)
		assert.Empty(t, updates)
	}
	assert.Equal(t, before, p.Snapshot())
}

func TestSelectMidPlaybackResets(t *testing.T) {
	p := newStoppedPlayer(t, threeLineScenario(), nil)

	p.step(2000 * time.Millisecond)
	require.Len(t, p.Snapshot().Revealed, 2)

	other := &scenario.DemoScenario{
		ID: "other",
		Transcript: []scenario.TranscriptLine{
			{Role: scenario.RoleAgent, Content: "fresh start", DelayMs: 0},
		},
	}
	p.Select(other)
	defer p.Close()

	snap := p.Snapshot()
	assert.Equal(t, "other", snap.ScenarioID)
	require.Len(t, snap.Revealed, 1)
	assert.Equal(t, "fresh start", snap.Revealed[0].Content)
	// A one-line scenario completes at selection.
	assert.Equal(t, StateComplete, snap.State)
}

func TestEventTaggedLinesSurfaceOnSideChannel(t *testing.T) {
	var events []scenario.Event
	p := newStoppedPlayer(t, threeLineScenario(), func(u Update) {
		if u.Event != "" {
			events = append(events, u.Event)
		}
	})
	defer p.Close()

	p.mu.Lock()
	updates := p.advanceLocked(10 * time.Second)
	p.mu.Unlock()
	p.emit(updates)

	assert.Equal(t, []scenario.Event{scenario.EventAlert}, events)
}

func TestCloseReturnsToIdle(t *testing.T) {
	p := newStoppedPlayer(t, threeLineScenario(), nil)
	p.Close()
	snap := p.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.Revealed)
	assert.Empty(t, snap.ScenarioID)
}
