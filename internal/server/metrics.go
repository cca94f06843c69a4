package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/mortgage-payoff/pkg/mortgage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the Prometheus collectors for one handler, registered on a
// registry of its own.
type metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	calculations *prometheus.CounterVec
	imports      *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mortgage_payoff",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mortgage_payoff",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mortgage_payoff",
			Name:      "calculations_total",
			Help:      "Engine runs by outcome.",
		}, []string{"outcome"}),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mortgage_payoff",
			Name:      "schedule_imports_total",
			Help:      "CSV schedule imports by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.calculations,
		m.imports,
	)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// instrument records the status and latency of every routed request.
func (m *metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		m.duration.WithLabelValues(routePattern(r)).Observe(time.Since(start).Seconds())
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(routePattern(r), r.Method, strconv.Itoa(status)).Inc()
	})
}

func (m *metrics) observeCalculation(err error) {
	m.calculations.WithLabelValues(calculationOutcome(err)).Inc()
}

func (m *metrics) observeImport(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	m.imports.WithLabelValues(outcome).Inc()
}

func calculationOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, mortgage.ErrInsufficientPayment):
		return "insufficient_payment"
	case errors.Is(err, mortgage.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}

// routePattern returns the chi pattern that matched r, never the raw path.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
