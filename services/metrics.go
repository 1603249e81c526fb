package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the calculator's Prometheus collectors.
type Metrics struct {
	Calculations    *prometheus.CounterVec
	InvalidInputs   *prometheus.CounterVec
	ResultKcal      prometheus.Histogram
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers all collectors on reg. Pass a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Calculations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bmr_calculations_total",
			Help: "Calculation attempts by outcome (ok, invalid)",
		}, []string{"outcome"}),
		InvalidInputs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bmr_invalid_input_total",
			Help: "Rejected submissions by the first failing field",
		}, []string{"field"}),
		ResultKcal: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "bmr_result_kcal",
			Help:    "Distribution of computed BMR values in kcal/day",
			Buckets: []float64{800, 1000, 1200, 1400, 1600, 1800, 2000, 2200, 2500, 3000, 4000},
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bmr_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method"}),
	}
}

// ObserveResult records one calculation outcome.
func (m *Metrics) ObserveResult(ok bool, bmr int, field string) {
	if ok {
		m.Calculations.WithLabelValues("ok").Inc()
		m.ResultKcal.Observe(float64(bmr))
		return
	}
	m.Calculations.WithLabelValues("invalid").Inc()
	m.InvalidInputs.WithLabelValues(field).Inc()
}

// ObserveRequest records the duration of a request that began at start.
func (m *Metrics) ObserveRequest(route, method string, start time.Time) {
	m.RequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
}
