package reaction

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same offset, clamped to the requested range.
type fixedRand int64

func (r fixedRand) Int64N(n int64) int64 {
	if int64(r) >= n {
		return n - 1
	}
	return int64(r)
}

type recordingObserver struct {
	transitions []string
	scores      []Score
	resets      []int
}

func (o *recordingObserver) StateChanged(from, to GameState) {
	o.transitions = append(o.transitions, fmt.Sprintf("%s->%s", from, to))
}

func (o *recordingObserver) ScoreRecorded(score Score) {
	o.scores = append(o.scores, score)
}

func (o *recordingObserver) HistoryReset(cleared int) {
	o.resets = append(o.resets, cleared)
}

func newTestController(t *testing.T) (*Controller, *clockwork.FakeClock, *recordingObserver) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	observer := &recordingObserver{}
	ids := 0
	c := NewController(NewControllerOptions{
		Clock:    clock,
		Rand:     fixedRand(0),
		Observer: observer,
		NewID: func() string {
			ids++
			return fmt.Sprintf("score-%d", ids)
		},
	})
	return c, clock, observer
}

// assertTimerInvariant checks that a cue is pending iff the state is WAITING.
func assertTimerInvariant(t *testing.T, c *Controller) {
	t.Helper()
	assert.Equal(t, c.State() == StateWaiting, c.Pending(), "pending timer in state %s", c.State())
}

// playRound runs one full round from a state that accepts input and
// reacts after the given latency.
func playRound(t *testing.T, c *Controller, clock *clockwork.FakeClock, latency time.Duration) {
	t.Helper()
	c.Input()
	require.Equal(t, StateWaiting, c.State())
	clock.Advance(DefaultMinDelay)
	c.Tick()
	require.Equal(t, StateNow, c.State())
	clock.Advance(latency)
	c.Input()
	require.Equal(t, StateResult, c.State())
}

func TestController_validRound(t *testing.T) {
	c, clock, observer := newTestController(t)
	assert.Equal(t, StateIdle, c.State())
	assertTimerInvariant(t, c)

	c.Input()
	assert.Equal(t, StateWaiting, c.State())
	assertTimerInvariant(t, c)

	// The cue does not fire before its delay has elapsed.
	clock.Advance(DefaultMinDelay - time.Millisecond)
	c.Tick()
	assert.Equal(t, StateWaiting, c.State())

	clock.Advance(time.Millisecond)
	c.Tick()
	assert.Equal(t, StateNow, c.State())
	assertTimerInvariant(t, c)

	clock.Advance(250 * time.Millisecond)
	c.Input()
	assert.Equal(t, StateResult, c.State())
	assertTimerInvariant(t, c)

	history := c.History()
	require.Len(t, history, 1)
	assert.Equal(t, int64(250), history[0].MS)
	assert.Equal(t, "score-1", history[0].ID)
	assert.Equal(t, clock.Now(), history[0].Timestamp)
	assert.Equal(t, int64(250), c.LastMS())
	assert.Equal(t, "250 ms", c.Prompt().Title)

	assert.Equal(t, []string{"IDLE->WAITING", "WAITING->NOW", "NOW->RESULT"}, observer.transitions)
	assert.Len(t, observer.scores, 1)
}

func TestController_tooEarly(t *testing.T) {
	c, clock, _ := newTestController(t)

	c.Input()
	require.Equal(t, StateWaiting, c.State())

	clock.Advance(time.Second)
	c.Input()
	assert.Equal(t, StateTooEarly, c.State())
	assertTimerInvariant(t, c)

	// The cancelled cue must never fire.
	clock.Advance(10 * time.Second)
	c.Tick()
	assert.Equal(t, StateTooEarly, c.State())

	c.Input()
	assert.Equal(t, StateWaiting, c.State())
	assertTimerInvariant(t, c)
	assert.Empty(t, c.History())
}

func TestController_inputBeforeTickIsPremature(t *testing.T) {
	c, clock, _ := newTestController(t)

	c.Input()
	clock.Advance(DefaultMaxDelay)
	// The timer expired, but the press is delivered before the cue is observed.
	c.Input()
	assert.Equal(t, StateTooEarly, c.State())

	c.Tick()
	assert.Equal(t, StateTooEarly, c.State())
	assertTimerInvariant(t, c)
}

func TestController_delayRange(t *testing.T) {
	tests := []struct {
		name  string
		rand  fixedRand
		delay time.Duration
	}{
		{name: "lower bound", rand: 0, delay: 2000 * time.Millisecond},
		{name: "middle", rand: fixedRand(1500 * time.Millisecond), delay: 3500 * time.Millisecond},
		{name: "upper bound is exclusive", rand: fixedRand(time.Hour), delay: 5000*time.Millisecond - time.Nanosecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := clockwork.NewFakeClock()
			c := NewController(NewControllerOptions{Clock: clock, Rand: tt.rand})

			c.Input()
			clock.Advance(tt.delay - time.Nanosecond)
			c.Tick()
			assert.Equal(t, StateWaiting, c.State())

			clock.Advance(time.Nanosecond)
			c.Tick()
			assert.Equal(t, StateNow, c.State())
		})
	}
}

func TestController_historyCap(t *testing.T) {
	c, clock, _ := newTestController(t)

	for i := 1; i <= 51; i++ {
		playRound(t, c, clock, time.Duration(i)*time.Millisecond)
		assertTimerInvariant(t, c)
	}

	history := c.History()
	require.Len(t, history, 50)
	assert.Equal(t, int64(51), history[0].MS)
	assert.Equal(t, int64(2), history[49].MS)
	for i := 1; i < len(history); i++ {
		assert.True(t, history[i-1].Timestamp.After(history[i].Timestamp))
	}
}

func TestController_resetHistory(t *testing.T) {
	c, clock, observer := newTestController(t)
	playRound(t, c, clock, 300*time.Millisecond)
	playRound(t, c, clock, 200*time.Millisecond)

	c.Input()
	require.Equal(t, StateWaiting, c.State())

	c.ResetHistory()
	assert.Empty(t, c.History())
	assert.Equal(t, StateWaiting, c.State())
	assert.True(t, c.Pending())
	assert.Equal(t, []int{2}, observer.resets)

	// The round in progress keeps running.
	clock.Advance(DefaultMinDelay)
	c.Tick()
	assert.Equal(t, StateNow, c.State())
}

func TestController_close(t *testing.T) {
	c, clock, _ := newTestController(t)

	c.Input()
	require.True(t, c.Pending())

	c.Close()
	assert.False(t, c.Pending())

	clock.Advance(time.Minute)
	c.Tick()
	c.Input()
	assert.Equal(t, StateWaiting, c.State())
	assert.Empty(t, c.History())

	// Close is idempotent.
	c.Close()
}

func TestController_scoresAreNonNegative(t *testing.T) {
	c, clock, _ := newTestController(t)
	playRound(t, c, clock, 0)

	history := c.History()
	require.Len(t, history, 1)
	assert.Equal(t, int64(0), history[0].MS)
}

func TestController_historyIsCopied(t *testing.T) {
	c, clock, _ := newTestController(t)
	playRound(t, c, clock, 120*time.Millisecond)

	history := c.History()
	history[0].MS = 1
	assert.Equal(t, int64(120), c.History()[0].MS)
}

func TestNewController_defaults(t *testing.T) {
	c := NewController(NewControllerOptions{})
	assert.Equal(t, DefaultMinDelay, c.minDelay)
	assert.Equal(t, DefaultMaxDelay, c.maxDelay)
	assert.Equal(t, DefaultHistorySize, c.history.capacity)
	assert.NotNil(t, c.clock)
	assert.NotNil(t, c.rand)
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, "Reaction Test", c.Prompt().Title)
	c.Close()
}

func TestNewController_clampsDelays(t *testing.T) {
	tests := []struct {
		name    string
		min     time.Duration
		max     time.Duration
		wantMin time.Duration
		wantMax time.Duration
	}{
		{name: "defaults", wantMin: DefaultMinDelay, wantMax: DefaultMaxDelay},
		{name: "within bounds", min: 2500 * time.Millisecond, max: 4000 * time.Millisecond, wantMin: 2500 * time.Millisecond, wantMax: 4000 * time.Millisecond},
		{name: "min too short", min: time.Second, max: 3000 * time.Millisecond, wantMin: DefaultMinDelay, wantMax: 3000 * time.Millisecond},
		{name: "max too long", min: 3000 * time.Millisecond, max: time.Minute, wantMin: 3000 * time.Millisecond, wantMax: DefaultMaxDelay},
		{name: "min past the window", min: time.Minute, max: time.Minute, wantMin: DefaultMaxDelay - time.Millisecond, wantMax: DefaultMaxDelay},
		{name: "inverted", min: 4000 * time.Millisecond, max: 2000 * time.Millisecond, wantMin: 4000 * time.Millisecond, wantMax: 4001 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(NewControllerOptions{
				Clock:    clockwork.NewFakeClock(),
				MinDelay: tt.min,
				MaxDelay: tt.max,
			})
			defer c.Close()
			assert.Equal(t, tt.wantMin, c.minDelay)
			assert.Equal(t, tt.wantMax, c.maxDelay)
			assert.GreaterOrEqual(t, c.minDelay, DefaultMinDelay)
			assert.LessOrEqual(t, c.maxDelay, DefaultMaxDelay)
		})
	}
}

func TestNewController_capsHistory(t *testing.T) {
	c := NewController(NewControllerOptions{
		Clock:       clockwork.NewFakeClock(),
		HistorySize: 100,
	})
	defer c.Close()
	assert.Equal(t, MaxHistorySize, c.history.capacity)
}

// TestController_randomWalk interleaves presses with clock advances and
// checks the timer and history invariants after every step.
func TestController_randomWalk(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	rng := rand.New(rand.NewPCG(1, 2))
	c := NewController(NewControllerOptions{
		Clock: clock,
		Rand:  rand.New(rand.NewPCG(3, 4)),
	})
	defer c.Close()

	seen := map[GameState]bool{c.State(): true}
	for step := 0; step < 2000; step++ {
		before := c.State()
		if rng.IntN(2) == 0 {
			c.Input()
		} else {
			clock.Advance(time.Duration(rng.Int64N(6000)) * time.Millisecond)
			c.Tick()
			if before != StateWaiting {
				assert.Equal(t, before, c.State(), "step %d: tick changed state %s", step, before)
			}
		}
		seen[c.State()] = true

		assertTimerInvariant(t, c)
		history := c.History()
		assert.LessOrEqual(t, len(history), MaxHistorySize, "step %d", step)
		for i := 1; i < len(history); i++ {
			assert.False(t, history[i].Timestamp.After(history[i-1].Timestamp), "step %d: history out of order", step)
		}
		if t.Failed() {
			t.Fatalf("invariant broken at step %d in state %s", step, c.State())
		}
	}

	for _, state := range []GameState{StateIdle, StateWaiting, StateNow, StateResult, StateTooEarly} {
		assert.True(t, seen[state], "state %s never reached", state)
	}
}
