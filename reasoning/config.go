package reasoning

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/reasoning/observability"
)

const defaultObserver = "slog"

// Config holds store initialization parameters.
type Config struct {
	// Observer names the registry entry that receives store events.
	Observer string `json:"observer,omitempty" yaml:"observer,omitempty"`
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() Config {
	return Config{Observer: defaultObserver}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

type options struct {
	observer observability.Observer
	registry *observability.Registry
}

// Option configures a Store at construction.
type Option func(*options)

// WithObserver sets the store's observer. It takes precedence over
// Config.Observer.
func WithObserver(o observability.Observer) Option {
	return func(opts *options) { opts.observer = o }
}

// WithRegistry sets the registry New resolves Config.Observer against.
// Without it New uses observability.NewRegistry(nil).
func WithRegistry(r *observability.Registry) Option {
	return func(opts *options) { opts.registry = r }
}

// New creates an empty Store from configuration.
func New(cfg *Config, opts ...Option) (*Store, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.observer == nil {
		if o.registry == nil {
			o.registry = observability.NewRegistry(nil)
		}

		name := cfg.Observer
		if name == "" {
			name = defaultObserver
		}

		obs, err := o.registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve observer: %w", err)
		}
		o.observer = obs
	}

	return newStore(o.observer), nil
}

// LoadConfig reads a config file, merges it with defaults, and returns the
// result. Files ending in .yaml or .yml are parsed as YAML, anything else as
// JSON.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
