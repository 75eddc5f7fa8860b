package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StoreOps        *prometheus.CounterVec

	registry *prometheus.Registry
}

// New registers the collectors for service on a fresh registry, so several
// instances can live in one process.
func New(service string) *Metrics {
	labels := prometheus.Labels{"service": service}
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "http_requests_total",
		Help:        "Number of HTTP requests handled",
		ConstLabels: labels,
	}, []string{"method", "route", "status"})
	m.registry.MustRegister(m.RequestsTotal)

	m.RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "http_request_duration_seconds",
		Help:        "Time spent handling HTTP requests",
		ConstLabels: labels,
		Buckets:     prometheus.DefBuckets,
	}, []string{"method", "route"})
	m.registry.MustRegister(m.RequestDuration)

	m.StoreOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "store_operations_total",
		Help:        "Number of document store operations",
		ConstLabels: labels,
	}, []string{"operation", "outcome"})
	m.registry.MustRegister(m.StoreOps)

	return m
}

// ObserveStore counts one store operation as "ok" or "error".
func (m *Metrics) ObserveStore(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.StoreOps.WithLabelValues(operation, outcome).Inc()
}

// Middleware records count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
