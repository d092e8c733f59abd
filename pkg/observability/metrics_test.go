package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.SetSize(5)
	m.ObserveCandidates(5, 10)
	m.ObserveCandidates(5, 6)
	m.ObserveSearch(5, 20*time.Millisecond, false)
	m.ObserveSearch(6, 20*time.Millisecond, true)

	assert.Equal(t, 16.0, testutil.ToFloat64(m.Candidates.WithLabelValues("5")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.CounterExamples.WithLabelValues("5")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterExamples.WithLabelValues("6")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.CurrentSize))
	assert.Equal(t, 2, testutil.CollectAndCount(m.SearchDuration))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SetSize(3)
		m.ObserveCandidates(3, 1)
		m.ObserveSearch(3, time.Second, true)
	})
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}
