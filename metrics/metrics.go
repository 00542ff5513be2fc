package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	Requests       *prometheus.CounterVec
	LatencyMS      *prometheus.HistogramVec
	CartOps        *prometheus.CounterVec
	PaymentIntents *prometheus.CounterVec
}

func NewServerMetrics() *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pishposh",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pishposh",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pishposh",
		Name:      "cart_operations_total",
		Help:      "Cart engine operations by outcome.",
	}, []string{"op", "outcome"})
	intents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pishposh",
		Name:      "payment_intents_total",
		Help:      "Payment intent creations by outcome.",
	}, []string{"outcome"})

	prometheus.MustRegister(requests, latency, cartOps, intents)
	return &ServerMetrics{
		Requests:       requests,
		LatencyMS:      latency,
		CartOps:        cartOps,
		PaymentIntents: intents,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
