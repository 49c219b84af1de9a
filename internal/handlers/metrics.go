package handlers

import (
	"github.com/prometheus/client_golang/prometheus"

	"herald/pkg/monitoring"
)

// Metrics tracks API-level counters. All methods are nil-safe so tests
// can run without a Prometheus registry.
type Metrics struct {
	generations        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	logins             *prometheus.CounterVec
	signups            prometheus.Counter
}

func NewMetrics(mc *monitoring.MetricsCollector) *Metrics {
	m := &Metrics{}
	if mc == nil {
		return m
	}

	m.generations = mc.NewCounter(
		"ad_copy_generations_total",
		"Ad copy generation requests by platform, mode, and outcome",
		[]string{"platform", "mode", "status"},
	)
	m.generationDuration = mc.NewHistogram(
		"ad_copy_generation_duration_seconds",
		"Ad copy generation latency",
		[]string{"platform"},
		nil,
	)
	m.logins = mc.NewCounter(
		"logins_total",
		"Login attempts by outcome",
		[]string{"status"},
	)
	signups := mc.NewCounter("signups_total", "Account registrations", []string{"status"})
	m.signups = signups.WithLabelValues("success")
	return m
}

func (m *Metrics) RecordGeneration(platform, mode, status string, seconds float64) {
	if m.generations != nil {
		m.generations.WithLabelValues(platform, mode, status).Inc()
	}
	if m.generationDuration != nil && status == "success" {
		m.generationDuration.WithLabelValues(platform).Observe(seconds)
	}
}

func (m *Metrics) RecordLogin(status string) {
	if m.logins != nil {
		m.logins.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) RecordSignup() {
	if m.signups != nil {
		m.signups.Inc()
	}
}
