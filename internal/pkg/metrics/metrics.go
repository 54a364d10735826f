// Package metrics declares the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "solwatch"

var (
	// IngestPayloads counts webhook payloads by outcome (processed, skipped, failed).
	IngestPayloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_payloads_total",
			Help:      "Webhook transaction payloads handled, by outcome.",
		},
		[]string{"outcome"},
	)

	// Alerts counts threshold alerts by delivery result (sent, failed).
	Alerts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Threshold alerts dispatched, by result.",
		},
		[]string{"result"},
	)

	// ChatCommands counts inbound chat turns by command token.
	ChatCommands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_commands_total",
			Help:      "Chat messages handled, by command.",
		},
		[]string{"command"},
	)

	// MessageSends counts outbound messaging API calls by result.
	MessageSends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "message_sends_total",
			Help:      "Messages sent to the messaging API, by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(IngestPayloads, Alerts, ChatCommands, MessageSends)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
