// Package metrics provides Prometheus metrics for the Closet Muse service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// confidenceBuckets spans the [0, 98] confidence range.
var confidenceBuckets = []float64{0, 15, 30, 45, 60, 75, 90, 98} //nolint:gochecknoglobals // fixed bucket layout

// Manager manages all Prometheus metrics for the Closet Muse service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Recommendation Metrics
	recommendations          *prometheus.CounterVec
	recommendationConfidence prometheus.Histogram
	recommendationLatency    prometheus.Histogram
	unfilledSlots            *prometheus.CounterVec

	// Outfit History Metrics
	outfitsConfirmed prometheus.Counter
	outfitsDuplicate prometheus.Counter

	// Repository Metrics
	wardrobeItems           prometheus.Gauge
	repositoryUpdateLatency prometheus.Histogram
	repositoryQueryLatency  prometheus.Histogram

	// Weather Metrics
	weatherRequests     *prometheus.CounterVec
	weatherLatency      prometheus.Histogram
	weatherBreakerState *prometheus.GaugeVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorsByComponent *prometheus.CounterVec
	errorsByEndpoint  *prometheus.CounterVec

	// System Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
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
		namespace:        "closetmuse",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric
	auto := promauto.With(m.registry)

	m.recommendations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "recommendations_total",
			Help:      "Total number of outfit recommendations by branch",
		},
		[]string{"branch"},
	)

	m.recommendationConfidence = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendation_confidence",
		Help:      "Confidence of produced recommendations",
		Buckets:   confidenceBuckets,
	})

	m.recommendationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendation_latency_milliseconds",
		Help:      "Time spent assembling a recommendation in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.unfilledSlots = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "unfilled_slots_total",
			Help:      "Total number of outfit slots left empty, by slot",
		},
		[]string{"slot"},
	)

	m.outfitsConfirmed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "outfits_confirmed_total",
		Help:      "Total number of recommendations confirmed as worn",
	})

	m.outfitsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "outfits_duplicate_total",
		Help:      "Total number of repeated confirmations rejected",
	})

	m.wardrobeItems = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "wardrobe_items",
		Help:      "Number of items in the wardrobe store",
	})

	m.repositoryUpdateLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "repository_update_latency_milliseconds",
		Help:      "Wardrobe store write latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.repositoryQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "repository_query_latency_milliseconds",
		Help:      "Wardrobe store read latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.weatherRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "weather_requests_total",
			Help:      "Total number of weather lookups by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	m.weatherLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "weather_latency_milliseconds",
		Help:      "Upstream weather lookup latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.weatherBreakerState = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "weather_breaker_state",
			Help:      "Weather circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"provider"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component and type",
		},
		[]string{"component", "error_type"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_total",
			Help:      "Total number of HTTP errors by endpoint and type",
		},
		[]string{"endpoint", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "gc_pause_milliseconds",
		Help:      "Average GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// Recommendation Metrics Functions.

// RecordRecommendation counts a recommendation and observes its confidence.
func RecordRecommendation(branch string, confidence int) {
	globalManager.recommendations.WithLabelValues(branch).Inc()
	globalManager.recommendationConfidence.Observe(float64(confidence))
}

// RecordRecommendationLatency records the time spent assembling a recommendation.
func RecordRecommendationLatency(latencyMs float64) {
	globalManager.recommendationLatency.Observe(latencyMs)
}

// RecordUnfilledSlot counts a slot left empty by a recommendation.
func RecordUnfilledSlot(slot string) {
	globalManager.unfilledSlots.WithLabelValues(slot).Inc()
}

// Outfit History Metrics Functions.

// RecordOutfitConfirmed increments the confirmed outfits counter.
func RecordOutfitConfirmed() {
	globalManager.outfitsConfirmed.Inc()
}

// RecordOutfitDuplicate increments the rejected duplicate confirmations counter.
func RecordOutfitDuplicate() {
	globalManager.outfitsDuplicate.Inc()
}

// Repository Metrics Functions.

// UpdateWardrobeItems sets the number of items in the wardrobe store.
func UpdateWardrobeItems(count int) {
	globalManager.wardrobeItems.Set(float64(count))
}

// RecordRepositoryUpdateLatency records wardrobe store write latency.
func RecordRepositoryUpdateLatency(latencyMs float64) {
	globalManager.repositoryUpdateLatency.Observe(latencyMs)
}

// RecordRepositoryQueryLatency records wardrobe store read latency.
func RecordRepositoryQueryLatency(latencyMs float64) {
	globalManager.repositoryQueryLatency.Observe(latencyMs)
}

// Weather Metrics Functions.

// RecordWeatherRequest counts a weather lookup by provider and outcome.
func RecordWeatherRequest(provider, outcome string) {
	globalManager.weatherRequests.WithLabelValues(provider, outcome).Inc()
}

// RecordWeatherLatency records upstream weather lookup latency.
func RecordWeatherLatency(latencyMs float64) {
	globalManager.weatherLatency.Observe(latencyMs)
}

// UpdateWeatherBreakerState sets the circuit breaker state gauge of provider.
func UpdateWeatherBreakerState(provider string, state int) {
	globalManager.weatherBreakerState.WithLabelValues(provider).Set(float64(state))
}

// HTTP Metrics Functions.

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an HTTP error with endpoint and type labels.
func RecordErrorByEndpoint(endpoint, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, errorType).Inc()
}

// System Metrics Functions.

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records the average GC pause.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
