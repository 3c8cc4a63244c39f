package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the method dispatch module.
type Metrics struct {
	// Request outcomes by method name and result code
	Requests *prometheus.CounterVec

	// Validation failures by failure class
	ValidationFailures *prometheus.CounterVec

	// Full dispatch latency by method name
	HandleLatency *prometheus.HistogramVec

	// Store lookup latency by operation
	LookupLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with all dispatch metrics registered.
func New() *Metrics {
	return &Metrics{
		Requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scoring_requests_total",
			Help: "Total dispatched requests by method and result code",
		}, []string{"method", "code"}),

		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scoring_validation_failures_total",
			Help: "Total validation failures by failure class",
		}, []string{"class"}),

		HandleLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scoring_handle_duration_seconds",
			Help:    "Duration of method dispatch including store lookups",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method"}),

		LookupLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scoring_store_lookup_duration_seconds",
			Help:    "Duration of store lookups by operation",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"op"}), // op: "score", "interests"
	}
}

// IncRequest records a dispatched request outcome.
func (m *Metrics) IncRequest(method string, code int) {
	if m != nil {
		m.Requests.WithLabelValues(method, strconv.Itoa(code)).Inc()
	}
}

// IncValidationFailure records a validation failure by class.
func (m *Metrics) IncValidationFailure(class string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(class).Inc()
	}
}

// ObserveHandle records the duration of one dispatch.
func (m *Metrics) ObserveHandle(method string, d time.Duration) {
	if m != nil {
		m.HandleLatency.WithLabelValues(method).Observe(d.Seconds())
	}
}

// ObserveLookup records the duration of one store lookup.
func (m *Metrics) ObserveLookup(op string, d time.Duration) {
	if m != nil {
		m.LookupLatency.WithLabelValues(op).Observe(d.Seconds())
	}
}
