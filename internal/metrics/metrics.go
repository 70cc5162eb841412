// Package metrics records upload outcomes as Prometheus counters.
//
// A nil *Recorder is valid and records nothing, which is how the Lambda
// entry point runs: there is no scrape target inside a function.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for uploads_total.
const (
	OutcomeAccepted    = "accepted"
	OutcomePreflight   = "preflight"
	OutcomeBadMethod   = "method_not_allowed"
	OutcomeBadRequest  = "bad_request"
	OutcomeIncomplete  = "incomplete"
	OutcomeServerError = "server_error"
)

// Result labels for flow_forward_total.
const (
	ForwardSent     = "sent"
	ForwardFailed   = "failed"
	ForwardDisabled = "disabled"
)

// Config configures the recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "flow_uploads").
	Namespace string

	// Registry receives the collectors (default: prometheus.DefaultRegisterer).
	Registry prometheus.Registerer
}

// Recorder holds the upload counters.
type Recorder struct {
	uploads  *prometheus.CounterVec
	forwards *prometheus.CounterVec
}

// New registers the counters with config.Registry.
func New(config Config) *Recorder {
	if config.Namespace == "" {
		config.Namespace = "flow_uploads"
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(config.Registry)

	return &Recorder{
		uploads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "uploads_total",
			Help:      "Upload requests handled, by body mode and outcome",
		}, []string{"mode", "outcome"}),

		forwards: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "flow_forward_total",
			Help:      "Webhook forwarding attempts by result",
		}, []string{"result"}),
	}
}

// Upload counts one handled request. mode is empty for requests that never
// reached body parsing.
func (r *Recorder) Upload(mode, outcome string) {
	if r == nil {
		return
	}
	if mode == "" {
		mode = "none"
	}
	r.uploads.WithLabelValues(mode, outcome).Inc()
}

// Forward counts one webhook attempt.
func (r *Recorder) Forward(result string) {
	if r == nil {
		return
	}
	r.forwards.WithLabelValues(result).Inc()
}
