// Package stats derives best and average reaction times from a score history.
package stats

import (
	"math"

	"github.com/cbodonnell/reaction/pkg/reaction"
)

// Summary holds the statistics shown in the overlay.
type Summary struct {
	// Best is the lowest latency in milliseconds.
	Best int64
	// Average is the mean latency rounded to the nearest millisecond, halves up.
	Average int64
	// Count is the number of scores summarized.
	Count int
}

// Summarize computes a Summary. It returns false when there are no scores.
func Summarize(scores []reaction.Score) (Summary, bool) {
	if len(scores) == 0 {
		return Summary{}, false
	}
	best := scores[0].MS
	var sum int64
	for _, s := range scores {
		if s.MS < best {
			best = s.MS
		}
		sum += s.MS
	}
	return Summary{
		Best:    best,
		Average: int64(math.Floor(float64(sum)/float64(len(scores)) + 0.5)),
		Count:   len(scores),
	}, true
}

// HistorySource is the owner of the score history.
type HistorySource interface {
	History() []reaction.Score
	ResetHistory()
}

// View reads statistics from a HistorySource and forwards resets to it.
type View struct {
	source HistorySource
}

func NewView(source HistorySource) *View {
	return &View{source: source}
}

func (v *View) Summary() (Summary, bool) {
	return Summarize(v.source.History())
}

// Lines returns the formatted best and average values.
func (v *View) Lines() (best, average string, ok bool) {
	s, ok := v.Summary()
	if !ok {
		return "", "", false
	}
	return reaction.FormatMS(s.Best), reaction.FormatMS(s.Average), true
}

// Reset clears the history without touching the game state.
func (v *View) Reset() {
	v.source.ResetHistory()
}
