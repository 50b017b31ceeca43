// Package metrics содержит Prometheus-коллекторы сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBConnsOpen     prometheus.Gauge
	DBConnsIdle     prometheus.Gauge
	DBConnsInUse    prometheus.Gauge

	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	AvailabilityComputations prometheus.Counter
	BookingsCreated          prometheus.Counter
	BookingsCancelled        prometheus.Counter
	HoldsExpired             prometheus.Counter
}

// New регистрирует и возвращает коллекторы сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		DBConnsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}),
		DBConnsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),
		DBConnsInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}),

		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_hits_total",
			Help:        "Total number of cache hits",
			ConstLabels: constLabels,
		}, []string{"backend"}),
		CacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_misses_total",
			Help:        "Total number of cache misses",
			ConstLabels: constLabels,
		}, []string{"backend"}),

		AvailabilityComputations: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "availability_computations_total",
			Help:        "Total number of availability computations (cache misses on the read path)",
			ConstLabels: constLabels,
		}),
		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: constLabels,
		}),
		BookingsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Total number of bookings cancelled",
			ConstLabels: constLabels,
		}),
		HoldsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_holds_expired_total",
			Help:        "Total number of unpaid holds released by the expiry job",
			ConstLabels: constLabels,
		}),
	}
}
