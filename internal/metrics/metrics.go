// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "issuestats"

// Outcome labels for stats computations.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics groups all collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	classified       *prometheus.CounterVec
	computations     *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
}

// New creates collectors registered on a fresh registry together with the
// process and Go runtime collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		upstreamRequests: registerOrExisting(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Requests sent to the issue tracker.",
			},
			[]string{"endpoint", "code"},
		)).(*prometheus.CounterVec),
		upstreamDuration: registerOrExisting(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Latency of issue tracker requests.",
			},
			[]string{"endpoint"},
		)).(*prometheus.HistogramVec),
		classified: registerOrExisting(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "issues_classified_total",
				Help:      "Issues classified per category.",
			},
			[]string{"category"},
		)).(*prometheus.CounterVec),
		computations: registerOrExisting(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stats_computations_total",
				Help:      "Stats computations by outcome.",
			},
			[]string{"outcome"},
		)).(*prometheus.CounterVec),
		httpRequests: registerOrExisting(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests served.",
			},
			[]string{"method", "path", "code"},
		)).(*prometheus.CounterVec),
	}

	registerOrExisting(reg, collectors.NewGoCollector())
	registerOrExisting(reg, collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}

func registerOrExisting(reg prometheus.Registerer, coll prometheus.Collector) prometheus.Collector {
	if err := reg.Register(coll); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector
		}
		panic(err)
	}
	return coll
}

// ObserveUpstream records one issue tracker request. code is 0 on transport failure.
func (m *Metrics) ObserveUpstream(endpoint string, code int, dur time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequests.WithLabelValues(endpoint, codeLabel(code)).Inc()
	m.upstreamDuration.WithLabelValues(endpoint).Observe(dur.Seconds())
}

// ObserveClassified records n issues classified into category.
func (m *Metrics) ObserveClassified(category string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.classified.WithLabelValues(category).Add(float64(n))
}

// ObserveComputation records the outcome of one stats computation.
func (m *Metrics) ObserveComputation(outcome string) {
	if m == nil {
		return
	}
	m.computations.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records one served HTTP request.
func (m *Metrics) ObserveHTTP(method, path string, code int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, codeLabel(code)).Inc()
}

func codeLabel(code int) string {
	if code == 0 {
		return "error"
	}
	return strconv.Itoa(code)
}
