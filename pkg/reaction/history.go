package reaction

const (
	// MaxHistorySize is the most scores a history ever keeps.
	MaxHistorySize = 50
	// DefaultHistorySize is the number of scores kept when no size is configured.
	DefaultHistorySize = MaxHistorySize
)

// History is a bounded list of scores ordered newest first.
type History struct {
	scores   []Score
	capacity int
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	if capacity > MaxHistorySize {
		capacity = MaxHistorySize
	}
	return &History{
		scores:   make([]Score, 0, capacity),
		capacity: capacity,
	}
}

// Add puts the score at the front, evicting the oldest entry when full.
func (h *History) Add(score Score) {
	if len(h.scores) < h.capacity {
		h.scores = append(h.scores, Score{})
	}
	copy(h.scores[1:], h.scores)
	h.scores[0] = score
}

// Scores returns a copy of the history, newest first.
func (h *History) Scores() []Score {
	out := make([]Score, len(h.scores))
	copy(out, h.scores)
	return out
}

// Clear empties the history and returns how many scores were dropped.
func (h *History) Clear() int {
	n := len(h.scores)
	h.scores = h.scores[:0]
	return n
}
