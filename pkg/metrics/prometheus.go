// Package metrics provides Prometheus metrics for kanadrill lessons.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomePassed = "passed"
	OutcomeFailed = "failed"
)

// Manager manages all Prometheus metrics for a lesson run.
type Manager struct {
	namespace      string
	subsystem      string
	attemptBuckets []float64
	registry       prometheus.Registerer
	gatherer       prometheus.Gatherer

	checks     *prometheus.CounterVec
	attempts   *prometheus.HistogramVec
	skipped    *prometheus.CounterVec
	interrupts prometheus.Counter
	score      prometheus.Gauge
	total      prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "kanadrill",
		subsystem:      "lesson",
		attemptBuckets: []float64{1, 2, 3},
		registry:       prometheus.DefaultRegisterer,
		gatherer:       prometheus.DefaultGatherer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.checks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "checks_total",
		Help:      "Total number of checked answers by exercise and outcome",
	}, []string{"exercise", "outcome"})

	m.attempts = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "attempts_per_exercise",
		Help:      "Number of answers given before an exercise was passed or skipped",
		Buckets:   m.attemptBuckets,
	}, []string{"exercise"})

	m.skipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skipped_total",
		Help:      "Total number of exercises skipped after running out of attempts",
	}, []string{"exercise"})

	m.interrupts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "interrupts_total",
		Help:      "Total number of exercises aborted by the learner",
	})

	m.score = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "score",
		Help:      "Exercises passed in the current session",
	})

	m.total = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total",
		Help:      "Exercises asked in the current session",
	})
}

// RecordCheck counts one checked answer.
func (m *Manager) RecordCheck(exercise string, passed bool) {
	outcome := OutcomeFailed
	if passed {
		outcome = OutcomePassed
	}
	m.checks.WithLabelValues(exercise, outcome).Inc()
}

// RecordAttempts observes how many answers an exercise took.
func (m *Manager) RecordAttempts(exercise string, n int) {
	m.attempts.WithLabelValues(exercise).Observe(float64(n))
}

// RecordSkip counts an exercise that ran out of attempts.
func (m *Manager) RecordSkip(exercise string) {
	m.skipped.WithLabelValues(exercise).Inc()
}

// RecordInterrupt counts an aborted exercise.
func (m *Manager) RecordInterrupt() {
	m.interrupts.Inc()
}

// UpdateTally sets the session score gauges.
func (m *Manager) UpdateTally(score, total int) {
	m.score.Set(float64(score))
	m.total.Set(float64(total))
}

// WriteTextfile writes every gathered metric to path in the Prometheus text
// format, for the node exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}

// Default returns the global metrics manager.
func Default() *Manager {
	return globalManager
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
