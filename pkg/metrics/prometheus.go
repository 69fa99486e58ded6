package metrics

import (
	"fmt"
	"log/slog"
	"sort"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector owns a private registry with the service's metrics.
type MetricsCollector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	searchResults   prometheus.Histogram
	searchesTotal   *prometheus.CounterVec
	logger          *slog.Logger
}

func NewMetricsCollector(logger *slog.Logger) *MetricsCollector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	return &MetricsCollector{
		registry: registry,
		requestsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time taken to serve an HTTP request",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		searchResults: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "content_search_results",
			Help:    "Number of records matched by a content search",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		}),
		searchesTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "content_searches_total",
			Help: "Total number of content searches by country",
		}, []string{"country"}),
		logger: logger,
	}
}

// RecordRequest counts one served request. route is the matched route pattern,
// not the raw path, to keep label cardinality bounded.
func (m *MetricsCollector) RecordRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveSearch records the size of one search result.
func (m *MetricsCollector) ObserveSearch(countryCode string, matches int) {
	m.searchesTotal.WithLabelValues(countryCode).Inc()
	m.searchResults.Observe(float64(matches))
}

// TrackContentRecords registers one content_records gauge per collection
// reported by counts. The gauges call counts on every scrape, so they follow
// records created after startup.
func (m *MetricsCollector) TrackContentRecords(counts func() map[string]int) error {
	names := make([]string, 0)
	for name := range counts() {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		name := name
		gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "content_records",
			Help:        "Number of records held per content collection",
			ConstLabels: prometheus.Labels{"collection": name},
		}, func() float64 {
			return float64(counts()[name])
		})
		if err := m.registry.Register(gauge); err != nil {
			return fmt.Errorf("failed to register content_records for %s: %w", name, err)
		}
	}
	m.logger.Debug("Content record gauges registered", slog.Int("collections", len(names)))
	return nil
}

// Registry exposes the underlying registry, mainly for tests.
func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
