package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pms-safya/abacus/internal/problemgen"
)

// Row and pair outcomes recorded by the generator metrics.
const (
	OutcomeAccepted = "accepted"
	OutcomeRelaxed  = "relaxed"
	OutcomeForced   = "forced"
	OutcomeFallback = "fallback"
)

// Metrics holds the HTTP and generator collectors. It implements
// problemgen.Observer.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	rows     *prometheus.CounterVec
	pairs    *prometheus.CounterVec
	attempts *prometheus.HistogramVec
}

var _ problemgen.Observer = (*Metrics)(nil)

// NewMetrics creates the collectors and registers them, along with the Go
// runtime and process collectors, on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "route"},
		),
		rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "abacus_addition_rows_total",
				Help: "Addition rows resolved, by rule and outcome",
			},
			[]string{"rule", "outcome"},
		),
		pairs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "abacus_multiplication_pairs_total",
				Help: "Multiplication factor pairs resolved, by level and outcome",
			},
			[]string{"level", "outcome"},
		),
		attempts: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "abacus_generation_attempts",
				Help:    "Draws needed to resolve one row or factor pair",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 200},
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(
		m.requests, m.duration, m.rows, m.pairs, m.attempts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveRow(e problemgen.RowEvent) {
	outcome := OutcomeAccepted
	switch {
	case e.Forced:
		outcome = OutcomeForced
	case e.Relaxed:
		outcome = OutcomeRelaxed
	}
	m.rows.WithLabelValues(string(e.Rule), outcome).Inc()
	m.attempts.WithLabelValues("row").Observe(float64(e.Attempts))
}

func (m *Metrics) ObservePair(e problemgen.PairEvent) {
	outcome := OutcomeAccepted
	if e.Fallback {
		outcome = OutcomeFallback
	}
	m.pairs.WithLabelValues(string(e.Level), outcome).Inc()
	m.attempts.WithLabelValues("pair").Observe(float64(e.Attempts))
}

// instrument records request counts and latency by route pattern.
func (m *Metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(statusOf(ww))).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
