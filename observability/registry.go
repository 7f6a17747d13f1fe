package observability

import (
	"fmt"
	"log/slog"
	"sync"
)

// Registry resolves observers by name so configuration can select one.
type Registry struct {
	observers map[string]Observer
	mu        sync.RWMutex
}

// NewRegistry returns a Registry with "noop" and "slog" registered. The slog
// observer writes to logger, or slog.Default() when logger is nil.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		observers: map[string]Observer{
			"noop": NoOpObserver{},
			"slog": NewSlogObserver(logger),
		},
	}
}

// Get returns the observer registered under name.
func (r *Registry) Get(name string) (Observer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	obs, exists := r.observers[name]
	if !exists {
		return nil, fmt.Errorf("unknown observer: %s", name)
	}
	return obs, nil
}

// Register adds or replaces the observer registered under name.
func (r *Registry) Register(name string, observer Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.observers[name] = observer
}
