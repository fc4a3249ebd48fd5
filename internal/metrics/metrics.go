package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	MessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smsrelay_messages_total",
			Help: "Relayed messages by request source and outcome",
		},
		[]string{"source", "outcome"}, // send|webhook|cli , sent|failed|rejected
	)

	ProviderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smsrelay_provider_duration_seconds",
			Help:    "Latency of outbound provider send calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "outcome"},
	)

	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smsrelay_webhook_events_total",
			Help: "Webhook calls by whether they triggered a send",
		},
		[]string{"result"}, // accepted|ignored
	)
)

// MustRegister registers the relay collectors on r. Registering the same
// collectors twice on one registry is a no-op; any other error panics.
func MustRegister(r prometheus.Registerer) {
	for _, c := range []prometheus.Collector{
		MessagesTotal,
		ProviderDuration,
		WebhookEventsTotal,
	} {
		if err := r.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			panic(err)
		}
	}
}
