package metrics

import (
	"github.com/cbodonnell/reaction/pkg/reaction"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultReactionBuckets covers typical human reaction times in milliseconds.
var DefaultReactionBuckets = []float64{100, 150, 200, 250, 300, 350, 400, 500, 750, 1000}

// Recorder turns controller notifications into Prometheus metrics.
type Recorder struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	reactionTime  prometheus.Histogram
	rounds        *prometheus.CounterVec
	transitions   *prometheus.CounterVec
	historyResets prometheus.Counter
	historySize   prometheus.Gauge
	state         *prometheus.GaugeVec

	// size mirrors the controller history length so the gauge can follow resets.
	size     int
	capacity int
}

var _ reaction.Observer = &Recorder{}

// NewRecorder creates a Recorder for a history of the given capacity.
func NewRecorder(capacity int, opts ...Option) *Recorder {
	r := &Recorder{
		namespace:        "reaction",
		subsystem:        "session",
		histogramBuckets: DefaultReactionBuckets,
		registry:         prometheus.NewRegistry(),
		capacity:         capacity,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.initializeMetrics()
	return r
}

func (r *Recorder) initializeMetrics() {
	auto := promauto.With(r.registry)

	r.reactionTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "reaction_time_milliseconds",
		Help:      "Histogram of measured reaction times in milliseconds",
		Buckets:   r.histogramBuckets,
	})

	r.rounds = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "rounds_total",
		Help:      "Total number of finished rounds by outcome",
	}, []string{"outcome"})

	r.transitions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "state_transitions_total",
		Help:      "Total number of state transitions by source and target state",
	}, []string{"from", "to"})

	r.historyResets = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "history_resets_total",
		Help:      "Total number of statistics resets",
	})

	r.historySize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "history_size",
		Help:      "Number of scores currently kept in the history",
	})

	r.state = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "state",
		Help:      "Current game state, 1 for the active state and 0 otherwise",
	}, []string{"state"})

	for _, s := range []reaction.GameState{reaction.StateIdle, reaction.StateWaiting, reaction.StateNow, reaction.StateResult, reaction.StateTooEarly} {
		r.state.WithLabelValues(s.String()).Set(0)
	}
	r.state.WithLabelValues(reaction.StateIdle.String()).Set(1)
}

// Registry returns the registry the metrics are registered on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) StateChanged(from, to reaction.GameState) {
	r.transitions.WithLabelValues(from.String(), to.String()).Inc()
	r.state.WithLabelValues(from.String()).Set(0)
	r.state.WithLabelValues(to.String()).Set(1)
	if to == reaction.StateTooEarly {
		r.rounds.WithLabelValues("too_early").Inc()
	}
}

func (r *Recorder) ScoreRecorded(score reaction.Score) {
	r.reactionTime.Observe(float64(score.MS))
	r.rounds.WithLabelValues("result").Inc()
	if r.capacity <= 0 || r.size < r.capacity {
		r.size++
	}
	r.historySize.Set(float64(r.size))
}

func (r *Recorder) HistoryReset(cleared int) {
	r.historyResets.Inc()
	r.size = 0
	r.historySize.Set(0)
}
