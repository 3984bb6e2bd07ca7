package dynarray

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics for one or more arrays. Arrays of
// different element types share a Metrics value and are told apart by the
// elem_type label. All recording is nil-safe: an array built without
// WithMetrics records nothing.
type Metrics struct {
	GrowsTotal       *prometheus.CounterVec
	RelocationsTotal *prometheus.CounterVec
	ConstructsTotal  *prometheus.CounterVec
	DestroysTotal    *prometheus.CounterVec
	LiveElements     *prometheus.GaugeVec
	registry         *prometheus.Registry
}

// NewMetrics creates and registers all metrics on a private registry, so
// multiple Metrics values never collide.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		GrowsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dynarray_grows_total",
				Help: "Total number of backing block growths",
			},
			[]string{"elem_type"},
		),
		RelocationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dynarray_relocations_total",
				Help: "Total number of element relocations (shifts and block moves)",
			},
			[]string{"elem_type"},
		),
		ConstructsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dynarray_constructs_total",
				Help: "Total number of elements constructed",
			},
			[]string{"elem_type"},
		),
		DestroysTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dynarray_destroys_total",
				Help: "Total number of elements destroyed",
			},
			[]string{"elem_type"},
		),
		LiveElements: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dynarray_live_elements",
				Help: "Current number of live elements",
			},
			[]string{"elem_type"},
		),
		registry: registry,
	}

	registry.MustRegister(m.GrowsTotal)
	registry.MustRegister(m.RelocationsTotal)
	registry.MustRegister(m.ConstructsTotal)
	registry.MustRegister(m.DestroysTotal)
	registry.MustRegister(m.LiveElements)

	return m
}

// Registry returns the private registry backing this Metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler serving this Metrics in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) recordGrow(elemType string) {
	if m == nil {
		return
	}
	m.GrowsTotal.WithLabelValues(elemType).Inc()
}

func (m *Metrics) recordRelocations(elemType string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RelocationsTotal.WithLabelValues(elemType).Add(float64(n))
}

func (m *Metrics) recordConstructs(elemType string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ConstructsTotal.WithLabelValues(elemType).Add(float64(n))
}

func (m *Metrics) recordDestroys(elemType string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.DestroysTotal.WithLabelValues(elemType).Add(float64(n))
}

func (m *Metrics) setLive(elemType string, n int) {
	if m == nil {
		return
	}
	m.LiveElements.WithLabelValues(elemType).Set(float64(n))
}
