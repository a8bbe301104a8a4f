// Package metrics records request lifecycle events with Prometheus.
package metrics

import (
	"time"

	"github.com/DanielPopoola/request-flows/internal/application"
	"github.com/prometheus/client_golang/prometheus"
)

type Recorder struct {
	transitions *prometheus.CounterVec
	failures    *prometheus.CounterVec
	stale       *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

var _ application.Recorder = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(namespace string, reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_transitions_total",
			Help:      "Request state transitions by flow and resulting state.",
		}, []string{"flow", "state"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_failures_total",
			Help:      "Failed requests by flow and error category.",
		}, []string{"flow", "category"}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_completions_total",
			Help:      "Completions dropped because a later request superseded them.",
		}, []string{"flow"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time spent waiting for the remote API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"flow"}),
	}

	for _, c := range []prometheus.Collector{r.transitions, r.failures, r.stale, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ObserveTransition(flow string, status string) {
	r.transitions.WithLabelValues(flow, status).Inc()
}

func (r *Recorder) ObserveFailure(flow string, category application.ErrorCategory) {
	r.failures.WithLabelValues(flow, string(category)).Inc()
}

func (r *Recorder) ObserveStale(flow string) {
	r.stale.WithLabelValues(flow).Inc()
}

func (r *Recorder) ObserveDuration(flow string, d time.Duration) {
	r.duration.WithLabelValues(flow).Observe(d.Seconds())
}

// WriteTextfile dumps the registry in the node exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
