package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors recorded by the verifier.
type Metrics struct {
	Candidates      *prometheus.CounterVec
	CounterExamples *prometheus.CounterVec
	SearchDuration  *prometheus.HistogramVec
	CurrentSize     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// It panics if a collector with the same name is already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Candidates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "densca_candidates_evaluated_total",
				Help: "Total number of initial configurations evaluated by the oracle",
			},
			[]string{"size"},
		),
		CounterExamples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "densca_counter_examples_total",
				Help: "Total number of ring sizes for which a counterexample was found",
			},
			[]string{"size"},
		),
		SearchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "densca_search_duration_seconds",
				Help:    "Duration of the exhaustive search for one ring size",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
			},
			[]string{"size"},
		),
		CurrentSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "densca_search_current_size",
				Help: "Ring size currently being searched",
			},
		),
	}
	reg.MustRegister(m.Candidates, m.CounterExamples, m.SearchDuration, m.CurrentSize)
	return m
}

// ObserveCandidates adds n evaluated candidates for the given size. Nil-safe.
func (m *Metrics) ObserveCandidates(size int, n uint64) {
	if m == nil {
		return
	}
	m.Candidates.WithLabelValues(label(size)).Add(float64(n))
}

// ObserveSearch records the end of a search over one size. Nil-safe.
func (m *Metrics) ObserveSearch(size int, d time.Duration, found bool) {
	if m == nil {
		return
	}
	m.SearchDuration.WithLabelValues(label(size)).Observe(d.Seconds())
	if found {
		m.CounterExamples.WithLabelValues(label(size)).Inc()
	}
}

// SetSize records the size currently being searched. Nil-safe.
func (m *Metrics) SetSize(size int) {
	if m == nil {
		return
	}
	m.CurrentSize.Set(float64(size))
}

func label(size int) string {
	return strconv.Itoa(size)
}
