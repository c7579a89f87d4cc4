package reaction

import (
	"time"
)

// GameState is the current phase of the reaction test.
type GameState int

const (
	// StateIdle is the initial screen.
	StateIdle GameState = iota
	// StateWaiting means a cue is scheduled but has not fired. Input here is premature.
	StateWaiting
	// StateNow means the cue fired and the next input is measured.
	StateNow
	// StateResult shows the latency of the last valid input.
	StateResult
	// StateTooEarly means the last input arrived before the cue.
	StateTooEarly
)

func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateWaiting:
		return "WAITING"
	case StateNow:
		return "NOW"
	case StateResult:
		return "RESULT"
	case StateTooEarly:
		return "TOO_EARLY"
	}
	return "UNKNOWN"
}

// Score is a single completed round.
type Score struct {
	// ID uniquely identifies the score.
	ID string `json:"id"`
	// MS is the elapsed time in milliseconds between the cue and the input.
	MS int64 `json:"ms"`
	// Timestamp is when the score was recorded.
	Timestamp time.Time `json:"timestamp"`
}

type Event int

const (
	// EventInput is a single logical pointer press.
	EventInput Event = iota
	// EventCueFired is the expiry of the cue timer.
	EventCueFired
)

func (e Event) String() string {
	switch e {
	case EventInput:
		return "input"
	case EventCueFired:
		return "cue-fired"
	}
	return "unknown"
}

// Effect is the side effect the controller applies after a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectScheduleCue
	EffectCancelCue
	EffectStartClock
	EffectRecordScore
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectScheduleCue:
		return "schedule-cue"
	case EffectCancelCue:
		return "cancel-cue"
	case EffectStartClock:
		return "start-clock"
	case EffectRecordScore:
		return "record-score"
	}
	return "unknown"
}
