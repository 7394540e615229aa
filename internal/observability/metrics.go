package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riskibarqy/pickem-league/internal/usecase"
)

const metricsNamespace = "pickem"

// Metrics owns a private prometheus registry for the service.
type Metrics struct {
	registry *prometheus.Registry

	recomputeRuns     *prometheus.CounterVec
	recomputeDuration prometheus.Histogram
	usersScored       prometheus.Counter
	unmatchedPicks    prometheus.Counter
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		recomputeRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "scoring",
			Name:      "recompute_runs_total",
			Help:      "Score recompute runs by outcome.",
		}, []string{"outcome"}),
		recomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "scoring",
			Name:      "recompute_duration_seconds",
			Help:      "Wall time of score recompute runs.",
			Buckets:   prometheus.DefBuckets,
		}),
		usersScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "scoring",
			Name:      "users_scored_total",
			Help:      "Users whose weekly score was written.",
		}),
		unmatchedPicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "scoring",
			Name:      "unmatched_picks_total",
			Help:      "Picks that referenced a game outside the scored week.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.recomputeRuns,
		m.recomputeDuration,
		m.usersScored,
		m.unmatchedPicks,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRecompute implements usecase.ScoringMetrics.
func (m *Metrics) ObserveRecompute(result usecase.RecomputeResult, elapsed time.Duration, err error) {
	outcome := "success"
	switch {
	case err == nil:
	case usecase.IsStoreFailure(err):
		outcome = "store_failure"
	default:
		outcome = "error"
	}

	m.recomputeRuns.WithLabelValues(outcome).Inc()
	m.recomputeDuration.Observe(elapsed.Seconds())
	m.usersScored.Add(float64(result.UsersProcessed))
	m.unmatchedPicks.Add(float64(result.UnmatchedPicks))
}

// ObserveHTTPRequest records one served request. route is the matched mux
// pattern, never the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
