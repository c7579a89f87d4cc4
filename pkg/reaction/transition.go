package reaction

// Transition returns the next state and the side effect for an event.
// Pairs that have no entry in the table leave the state unchanged.
func Transition(state GameState, ev Event) (GameState, Effect) {
	switch ev {
	case EventInput:
		switch state {
		case StateIdle, StateResult, StateTooEarly:
			return StateWaiting, EffectScheduleCue
		case StateWaiting:
			return StateTooEarly, EffectCancelCue
		case StateNow:
			return StateResult, EffectRecordScore
		}
	case EventCueFired:
		if state == StateWaiting {
			return StateNow, EffectStartClock
		}
	}
	return state, EffectNone
}
