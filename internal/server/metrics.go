package server

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics carries the server's own registry so tests can build multiple
// servers without duplicate-registration panics from the default one.
type metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	classifications *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forte_requests_total",
			Help: "API requests by operation and status code.",
		}, []string{"operation", "status"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forte_classifications_total",
			Help: "Successful classifications by set cardinality.",
		}, []string{"cardinality"}),
	}
	m.registry.MustRegister(m.requests, m.classifications)
	return m
}

func (m *metrics) observe(operation string, status int) {
	m.requests.WithLabelValues(operation, strconv.Itoa(status)).Inc()
}

func (m *metrics) classified(cardinality int) {
	m.classifications.WithLabelValues(strconv.Itoa(cardinality)).Inc()
}
