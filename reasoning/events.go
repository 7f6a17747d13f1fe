package reasoning

import "github.com/tailored-agentic-units/reasoning/observability"

// Store event types.
const (
	EventPut         observability.EventType = "reasoning.put"
	EventHit         observability.EventType = "reasoning.hit"
	EventMiss        observability.EventType = "reasoning.miss"
	EventClear       observability.EventType = "reasoning.clear"
	EventUnavailable observability.EventType = "reasoning.unavailable"
	EventPoisoned    observability.EventType = "reasoning.poisoned"
)

const eventSource = "reasoning.Store"
