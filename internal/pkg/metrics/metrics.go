package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campusreg", Name: "http_requests_total", Help: "Processed HTTP requests",
	}, []string{"method", "route", "status"})
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "campusreg", Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration)
}

func Handler() http.Handler { return promhttp.Handler() }

// ObserveRequest records one handled request.
func ObserveRequest(method, route, status string, d time.Duration) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
