package reaction

import (
	"math/rand/v2"
	"time"

	"github.com/cbodonnell/reaction/pkg/log"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const (
	// DefaultMinDelay is the shortest wait before the cue fires.
	DefaultMinDelay = 2000 * time.Millisecond
	// DefaultMaxDelay is the exclusive upper bound of the wait before the cue fires.
	DefaultMaxDelay = 5000 * time.Millisecond
)

// Rand is the source of cue delays.
type Rand interface {
	// Int64N returns a value in [0, n).
	Int64N(n int64) int64
}

type NewControllerOptions struct {
	// Clock defaults to the real clock.
	Clock clockwork.Clock
	// Rand defaults to a randomly seeded PCG source.
	Rand Rand
	// MinDelay and MaxDelay bound the cue delay as [MinDelay, MaxDelay).
	// Zero values select the defaults. Bounds are clamped to
	// [DefaultMinDelay, DefaultMaxDelay].
	MinDelay time.Duration
	MaxDelay time.Duration
	// HistorySize caps the number of scores kept.
	HistorySize int
	// Observer is notified of transitions and history changes.
	Observer Observer
	// NewID generates score identifiers. Defaults to uuid.NewString.
	NewID func() string
}

// Controller runs the reaction test state machine.
//
// A Controller is not safe for concurrent use. Input, Tick and Close must be
// called from the same goroutine, which makes the order between a press and
// the cue firing well defined: whichever is delivered first wins.
type Controller struct {
	clock    clockwork.Clock
	rand     Rand
	minDelay time.Duration
	maxDelay time.Duration
	observer Observer
	newID    func() string
	logger   *log.Logger

	// state is the current game state.
	state GameState
	// cue is the pending cue timer. It is non-nil iff state is StateWaiting.
	cue clockwork.Timer
	// startTime is when the cue fired.
	startTime time.Time
	// lastMS is the latency of the last completed round.
	lastMS int64
	// history holds the completed rounds.
	history *History
	// closed is set once Close has been called.
	closed bool
}

func NewController(opts NewControllerOptions) *Controller {
	c := &Controller{
		clock:    opts.Clock,
		rand:     opts.Rand,
		minDelay: opts.MinDelay,
		maxDelay: opts.MaxDelay,
		observer: opts.Observer,
		newID:    opts.NewID,
		logger:   log.Default().With("component", "controller"),
		state:    StateIdle,
		history:  NewHistory(opts.HistorySize),
	}
	if c.clock == nil {
		c.clock = clockwork.NewRealClock()
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	c.minDelay, c.maxDelay = clampDelays(c.minDelay, c.maxDelay)
	if c.observer == nil {
		c.observer = NopObserver{}
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	return c
}

// clampDelays keeps the delay window inside [DefaultMinDelay, DefaultMaxDelay)
// and guarantees it is not empty.
func clampDelays(minDelay, maxDelay time.Duration) (time.Duration, time.Duration) {
	if minDelay == 0 && maxDelay == 0 {
		return DefaultMinDelay, DefaultMaxDelay
	}
	if minDelay < DefaultMinDelay {
		minDelay = DefaultMinDelay
	}
	if minDelay >= DefaultMaxDelay {
		minDelay = DefaultMaxDelay - time.Millisecond
	}
	if maxDelay > DefaultMaxDelay {
		maxDelay = DefaultMaxDelay
	}
	if maxDelay <= minDelay {
		maxDelay = minDelay + time.Millisecond
	}
	return minDelay, maxDelay
}

// Input handles a single logical pointer press.
func (c *Controller) Input() {
	if c.closed {
		return
	}
	c.dispatch(EventInput)
}

// Tick fires the cue if its timer has expired. It must be called regularly,
// once per frame is enough.
func (c *Controller) Tick() {
	if c.closed || c.cue == nil {
		return
	}
	select {
	case <-c.cue.Chan():
		c.cue = nil
		c.dispatch(EventCueFired)
	default:
	}
}

func (c *Controller) dispatch(ev Event) {
	from := c.state
	to, effect := Transition(from, ev)
	if to == from && effect == EffectNone {
		c.logger.Trace("Ignoring %s in state %s", ev, from)
		return
	}

	switch effect {
	case EffectScheduleCue:
		c.scheduleCue()
	case EffectCancelCue:
		c.cancelCue()
	case EffectStartClock:
		c.startTime = c.clock.Now()
	case EffectRecordScore:
		c.recordScore(c.clock.Now())
	}

	c.state = to
	c.logger.Debug("State changed from %s to %s on %s (%s)", from, to, ev, effect)
	c.observer.StateChanged(from, to)
}

// scheduleCue starts a new cue timer, replacing any timer that is still around.
func (c *Controller) scheduleCue() {
	c.cancelCue()
	delay := c.nextDelay()
	c.cue = c.clock.NewTimer(delay)
	c.logger.Debug("Scheduled cue in %s", delay)
}

func (c *Controller) nextDelay() time.Duration {
	window := int64(c.maxDelay - c.minDelay)
	return c.minDelay + time.Duration(c.rand.Int64N(window))
}

func (c *Controller) cancelCue() {
	if c.cue == nil {
		return
	}
	stopAndDrainTimer(c.cue)
	c.cue = nil
}

// stopAndDrainTimer stops a timer and empties its channel if it already fired.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}

func (c *Controller) recordScore(endTime time.Time) {
	ms := endTime.Sub(c.startTime).Milliseconds()
	if ms < 0 {
		ms = 0
	}
	score := Score{
		ID:        c.newID(),
		MS:        ms,
		Timestamp: endTime,
	}
	c.lastMS = ms
	c.history.Add(score)
	c.logger.Info("Recorded reaction time of %d ms", ms)
	c.observer.ScoreRecorded(score)
}

// State returns the current game state.
func (c *Controller) State() GameState {
	return c.state
}

// Pending reports whether a cue timer is outstanding.
func (c *Controller) Pending() bool {
	return c.cue != nil
}

// LastMS returns the latency of the most recent completed round.
func (c *Controller) LastMS() int64 {
	return c.lastMS
}

// History returns a copy of the recorded scores, newest first.
func (c *Controller) History() []Score {
	return c.history.Scores()
}

// ResetHistory clears the recorded scores. The current state and any pending
// cue are left alone, so a round in progress keeps running.
func (c *Controller) ResetHistory() {
	cleared := c.history.Clear()
	c.logger.Info("Cleared %d scores from history", cleared)
	c.observer.HistoryReset(cleared)
}

// Prompt describes how the current state should be drawn.
func (c *Controller) Prompt() Prompt {
	return PromptFor(c.state, c.lastMS)
}

// Close cancels any pending cue. The controller ignores input afterwards.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.cancelCue()
	c.closed = true
	c.logger.Debug("Controller closed in state %s", c.state)
}
