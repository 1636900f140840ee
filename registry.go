package composed

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Registry maps string keys to composed values, lazily constructing an empty
// value on first lookup. It exclusively owns its map; callers hold references
// only to the individual values it returns. A registry lives for as long as
// whoever constructed it keeps it, there is no implicit process-wide
// singleton.
type Registry struct {
	mu     sync.Mutex
	values map[string]*Value
	logger zerolog.Logger
}

// RegistryOption configures a Registry at construction time.
type RegistryOption func(*Registry)

// WithLogger sets the logger propagated to every value the registry
// constructs.
func WithLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry with optional configuration.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		values: make(map[string]*Value),
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Lookup returns the value registered under key, constructing an empty one on
// first access. Repeated calls with the same key return the identical
// instance, so independent producers and consumers share state without
// coordination.
func (r *Registry) Lookup(key string) *Value {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.values[key]; ok {
		return v
	}

	v := NewValue(key, WithValueLogger(r.logger))
	r.values[key] = v
	return v
}

// Keys returns the keys of all constructed values, sorted.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	keys := make([]string, 0, len(r.values))
	for key := range r.values {
		keys = append(keys, key)
	}
	r.mu.Unlock()

	sort.Strings(keys)
	return keys
}
