package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "tournament"

// Outcome labels for rounds_generated_total.
const (
	OutcomeSuccess       = "success"
	OutcomeRejected      = "rejected"
	OutcomeInvariant     = "invariant_violation"
	OutcomeInternalError = "error"
)

// Metrics owns a dedicated registry so tests can build as many instances as they like.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	roundsGenerated   *prometheus.CounterVec
	gamesCreated      *prometheus.CounterVec
	sitOuts           prometheus.Counter
	rotationResets    prometheus.Counter
	generationSeconds prometheus.Histogram
	checkIns          prometheus.Counter
	dailyResets       prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		roundsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_generated_total",
			Help:      "Round generation attempts by outcome.",
		}, []string{"outcome"}),
		gamesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_created_total",
			Help:      "Games created by round generation, by kind.",
		}, []string{"kind"}),
		sitOuts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "round_sit_outs_total",
			Help:      "Teams left without an opponent in a generated round.",
		}),
		rotationResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "power_rotation_resets_total",
			Help:      "Pool-wide resets of the power rotation.",
		}),
		generationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "round_generation_seconds",
			Help:      "Wall time of a round generation including persistence.",
			Buckets:   prometheus.DefBuckets,
		}),
		checkIns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_ins_total",
			Help:      "Successful participant check-ins.",
		}),
		dailyResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "daily_resets_total",
			Help:      "Completed midnight check-in resets.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.roundsGenerated,
		m.gamesCreated,
		m.sitOuts,
		m.rotationResets,
		m.generationSeconds,
		m.checkIns,
		m.dailyResets,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveRound(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.roundsGenerated.WithLabelValues(outcome).Inc()
	m.generationSeconds.Observe(elapsed.Seconds())
}

func (m *Metrics) RecordGames(normal, power, sitOuts int) {
	if m == nil {
		return
	}
	m.gamesCreated.WithLabelValues("normal").Add(float64(normal))
	m.gamesCreated.WithLabelValues("power").Add(float64(power))
	m.sitOuts.Add(float64(sitOuts))
}

func (m *Metrics) RecordRotationReset() {
	if m == nil {
		return
	}
	m.rotationResets.Inc()
}

func (m *Metrics) RecordCheckIn() {
	if m == nil {
		return
	}
	m.checkIns.Inc()
}

func (m *Metrics) RecordDailyReset() {
	if m == nil {
		return
	}
	m.dailyResets.Inc()
}
