package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds instrumentation for the API client: one counter and
// one latency histogram per logical operation (list_issues,
// delete_issue, ...), plus an in-flight gauge covering bulk fan-outs.
type Metrics struct {
	APIRequests *prometheus.CounterVec
	APILatency  *prometheus.HistogramVec
	InFlight    prometheus.Gauge
}

// New creates unregistered metrics. Callers that want them exported
// register via Register; tests can create as many instances as they
// like without colliding on the default registry.
func New(namespace string) *Metrics {
	return &Metrics{
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests by operation and outcome",
		}, []string{"operation", "status"}),
		APILatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Duration of API requests",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_requests_in_flight",
			Help:      "Current number of in-flight API requests",
		}),
	}
}

// Register adds all metrics to the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.APIRequests, m.APILatency, m.InFlight} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
