package metrics

import (
	"net/http"
	"strconv"
	"time"

	"hospital-registry-service/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hospital_registry"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests handled, by method, route and status code.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	registryHospitals = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hospitals",
		Help:      "Number of hospital records in the registry.",
	})

	registryTotalBeds = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "total_beds",
		Help:      "Total bed capacity across all registered hospitals.",
	})

	registryICUBeds = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "icu_beds",
		Help:      "ICU bed capacity across all registered hospitals.",
	})
)

// ObserveRequest records one completed HTTP request.
func ObserveRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// SetRegistryStats publishes a registry snapshot to the gauges.
func SetRegistryStats(stats models.RegistryStats) {
	registryHospitals.Set(float64(stats.Hospitals))
	registryTotalBeds.Set(float64(stats.TotalBeds))
	registryICUBeds.Set(float64(stats.ICUBeds))
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
