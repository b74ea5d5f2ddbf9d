// Package metrics provides Prometheus metrics for the Statsig MCP server.
// It tracks tool call counts, latencies, backend API health, and degraded
// evaluation results.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "statsig_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// ConsoleAPILatency measures Console API call latency by resource and action
	ConsoleAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "console_api_latency_seconds",
		Help:      "Console API call latency by resource and action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource", "action"})

	// ConsoleAPIRequestsTotal counts Console API requests
	ConsoleAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "console_api_requests_total",
		Help:      "Total Console API requests by resource, action and status",
	}, []string{"resource", "action", "status"})

	// EvalAPIRequestsTotal counts evaluation API requests
	EvalAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "eval_api_requests_total",
		Help:      "Total evaluation API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	// EvalDefaultsTotal counts evaluations that degraded to default values
	EvalDefaultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "eval_defaults_total",
		Help:      "Evaluations that returned default values due to backend failures",
	}, []string{"kind"})

	// EventsLoggedTotal counts log_event outcomes
	EventsLoggedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "events_logged_total",
		Help:      "Custom events logged by status",
	}, []string{"status"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordConsoleCall records a Console API call
func RecordConsoleCall(resource, action string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	ConsoleAPIRequestsTotal.WithLabelValues(resource, action, status).Inc()
	ConsoleAPILatency.WithLabelValues(resource, action).Observe(duration)
}

// RecordEvalCall records an evaluation API call
func RecordEvalCall(endpoint string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	EvalAPIRequestsTotal.WithLabelValues(endpoint, status).Inc()
}

// RecordEvalDefault records an evaluation that degraded to its default value
func RecordEvalDefault(kind string) {
	EvalDefaultsTotal.WithLabelValues(kind).Inc()
}
