package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	namespace = "landmos_ai"

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	inferenceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inference_requests_total",
			Help:      "Ollama generate calls by kind and outcome",
		},
		[]string{"kind", "model", "status"},
	)

	inferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inference_duration_seconds",
			Help:      "Ollama generate call duration in seconds",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"kind", "model"},
	)

	chartUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_uploads_total",
			Help:      "Uploaded chart files by outcome",
		},
		[]string{"status"},
	)

	stationFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "station_fetch_total",
			Help:      "LandMOS API fetches by outcome",
		},
		[]string{"status"},
	)

	stationFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "station_fetch_duration_seconds",
			Help:      "LandMOS API fetch duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)

func ObserveInference(kind, model, status string, duration time.Duration) {
	inferenceTotal.With(prometheus.Labels{
		"kind":   kind,
		"model":  model,
		"status": status,
	}).Inc()
	inferenceDuration.With(prometheus.Labels{
		"kind":  kind,
		"model": model,
	}).Observe(duration.Seconds())
}

func ChartUploadsTotal(status string) {
	chartUploadsTotal.With(prometheus.Labels{"status": status}).Inc()
}

func ObserveStationFetch(status string, duration time.Duration) {
	stationFetchTotal.With(prometheus.Labels{"status": status}).Inc()
	stationFetchDuration.With(prometheus.Labels{"status": status}).Observe(duration.Seconds())
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusResponseWriter{w, http.StatusOK}
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		httpRequestsTotal.With(prometheus.Labels{
			"method": r.Method,
			"path":   r.URL.Path,
			"code":   strconv.Itoa(ww.status),
		}).Inc()
		httpRequestDuration.With(prometheus.Labels{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Observe(duration.Seconds())
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
