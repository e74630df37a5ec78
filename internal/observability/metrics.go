package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "resume_ats"

// scoreBuckets split the 0-100 range used by confidence and match scores.
var scoreBuckets = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// Metrics holds the Prometheus collectors for the HTTP API. Each instance
// owns a private registry so tests and multiple servers do not collide.
type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	parseConfidence *prometheus.HistogramVec
	matchScore      *prometheus.HistogramVec
	jobFetchTotal   *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
		},
	)
	parseConfidence := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "parser",
			Name:      "confidence",
			Help:      "Distribution of parse confidence scores.",
			Buckets:   scoreBuckets,
		},
		[]string{"source"},
	)
	matchScore := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "ats",
			Name:      "match_score",
			Help:      "Distribution of ATS match scores.",
			Buckets:   scoreBuckets,
		},
		[]string{"endpoint"},
	)
	jobFetchTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "fetch",
			Name:      "job_postings_total",
			Help:      "Job posting fetches by platform and outcome.",
		},
		[]string{"platform", "status"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		parseConfidence,
		matchScore,
		jobFetchTotal,
	)

	return &Metrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestInFlight: requestInFlight,
		parseConfidence: parseConfidence,
		matchScore:      matchScore,
		jobFetchTotal:   jobFetchTotal,
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts, latency and in-flight requests.
// routeOf maps a request to a bounded path label.
func (m *Metrics) Middleware(routeOf func(*http.Request) string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := routeOf(r)
		recorder := &StatusRecorder{ResponseWriter: w, StatusCode: http.StatusOK}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(r.Method, path, strconv.Itoa(recorder.StatusCode)).Inc()
		m.requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// RecordParse observes the confidence of a parsed resume.
func (m *Metrics) RecordParse(source string, confidence int) {
	m.parseConfidence.WithLabelValues(source).Observe(float64(confidence))
}

// RecordMatch observes the score of a match report.
func (m *Metrics) RecordMatch(endpoint string, score int) {
	m.matchScore.WithLabelValues(endpoint).Observe(float64(score))
}

// RecordJobFetch counts a job posting fetch.
func (m *Metrics) RecordJobFetch(platform string, err error) {
	if platform == "" {
		platform = "unknown"
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.jobFetchTotal.WithLabelValues(platform, status).Inc()
}

// StatusRecorder captures the status code written by a handler.
type StatusRecorder struct {
	http.ResponseWriter
	StatusCode int
}

func (w *StatusRecorder) WriteHeader(statusCode int) {
	w.StatusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *StatusRecorder) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
