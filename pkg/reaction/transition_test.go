package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name       string
		state      GameState
		event      Event
		wantState  GameState
		wantEffect Effect
	}{
		{name: "idle input", state: StateIdle, event: EventInput, wantState: StateWaiting, wantEffect: EffectScheduleCue},
		{name: "waiting cue", state: StateWaiting, event: EventCueFired, wantState: StateNow, wantEffect: EffectStartClock},
		{name: "waiting input", state: StateWaiting, event: EventInput, wantState: StateTooEarly, wantEffect: EffectCancelCue},
		{name: "now input", state: StateNow, event: EventInput, wantState: StateResult, wantEffect: EffectRecordScore},
		{name: "result input", state: StateResult, event: EventInput, wantState: StateWaiting, wantEffect: EffectScheduleCue},
		{name: "too early input", state: StateTooEarly, event: EventInput, wantState: StateWaiting, wantEffect: EffectScheduleCue},
		{name: "idle cue ignored", state: StateIdle, event: EventCueFired, wantState: StateIdle, wantEffect: EffectNone},
		{name: "now cue ignored", state: StateNow, event: EventCueFired, wantState: StateNow, wantEffect: EffectNone},
		{name: "result cue ignored", state: StateResult, event: EventCueFired, wantState: StateResult, wantEffect: EffectNone},
		{name: "too early cue ignored", state: StateTooEarly, event: EventCueFired, wantState: StateTooEarly, wantEffect: EffectNone},
		{name: "unknown event ignored", state: StateIdle, event: Event(42), wantState: StateIdle, wantEffect: EffectNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotState, gotEffect := Transition(tt.state, tt.event)
			assert.Equal(t, tt.wantState, gotState)
			assert.Equal(t, tt.wantEffect, gotEffect)
		})
	}
}

func TestGameState_String(t *testing.T) {
	assert.Equal(t, "IDLE", StateIdle.String())
	assert.Equal(t, "WAITING", StateWaiting.String())
	assert.Equal(t, "NOW", StateNow.String())
	assert.Equal(t, "RESULT", StateResult.String())
	assert.Equal(t, "TOO_EARLY", StateTooEarly.String())
	assert.Equal(t, "UNKNOWN", GameState(-1).String())
}
