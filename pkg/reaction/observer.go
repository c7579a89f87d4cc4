package reaction

// Observer is notified of controller activity. Implementations are called
// on the controller's goroutine and must not call back into the controller.
type Observer interface {
	StateChanged(from, to GameState)
	ScoreRecorded(score Score)
	HistoryReset(cleared int)
}

// NopObserver ignores every notification.
type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) StateChanged(from, to GameState) {}

func (NopObserver) ScoreRecorded(score Score) {}

func (NopObserver) HistoryReset(cleared int) {}
