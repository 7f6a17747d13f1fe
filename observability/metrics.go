package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "reasoning"

	eventsTotalMetricName = "events_total"
)

// MetricsObserver counts events by type in a Prometheus counter vector.
type MetricsObserver struct {
	events *prometheus.CounterVec
}

// NewMetricsObserver registers reasoning_events_total on reg. A nil reg
// means prometheus.DefaultRegisterer. Registering twice on the same
// registerer panics, as with any promauto collector.
func NewMetricsObserver(reg prometheus.Registerer) *MetricsObserver {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &MetricsObserver{
		events: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      eventsTotalMetricName,
				Help:      "A counter of reasoning store events by type.",
			},
			[]string{"type"},
		),
	}
}

func (o *MetricsObserver) OnEvent(_ context.Context, event Event) {
	o.events.WithLabelValues(string(event.Type)).Inc()
}

// Counter returns the counter for one event type.
func (o *MetricsObserver) Counter(eventType EventType) prometheus.Counter {
	return o.events.WithLabelValues(string(eventType))
}
