// Package telemetry exposes Prometheus counters for quiz activity.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	Attempts        *prometheus.CounterVec
	Analyses        *prometheus.CounterVec
	EmptyFilters    prometheus.Counter
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ActiveSessions  prometheus.Gauge
}

// New registers the quiz collectors on a fresh registry, so several
// instances can coexist in one process (tests, CLI and server).
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tutor_attempts_total",
				Help: "Submitted answers by topic and verdict",
			},
			[]string{"topic", "correct"},
		),
		Analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tutor_answer_analyses_total",
				Help: "Answer analyses by outcome and fallback reason",
			},
			[]string{"outcome", "reason"},
		),
		EmptyFilters: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tutor_empty_filter_results_total",
				Help: "Question requests that matched no catalog entry",
			},
		),
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 20},
			},
			[]string{"method", "endpoint"},
		),
		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tutor_active_sessions",
				Help: "Sessions currently held in memory",
			},
		),
	}

	m.registry.MustRegister(
		m.Attempts,
		m.Analyses,
		m.EmptyFilters,
		m.RequestCounter,
		m.RequestDuration,
		m.ActiveSessions,
	)
	return m
}

// RecordAnalysis implements grader.Recorder.
func (m *Metrics) RecordAnalysis(outcome, reason string) {
	m.Analyses.WithLabelValues(outcome, reason).Inc()
}

func (m *Metrics) RecordAttempt(topic string, correct bool) {
	m.Attempts.WithLabelValues(topic, strconv.FormatBool(correct)).Inc()
}

func (m *Metrics) RecordEmptyFilter() {
	m.EmptyFilters.Inc()
}

func (m *Metrics) SessionOpened() { m.ActiveSessions.Inc() }
func (m *Metrics) SessionClosed() { m.ActiveSessions.Dec() }

func (m *Metrics) ObserveRequest(method, endpoint string, status int, elapsed time.Duration) {
	m.RequestCounter.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
