package plugin

import (
	"fmt"
	"sort"
	"sync"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	pluginport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
)

// Registry is a name-keyed plugin table safe for concurrent use
type Registry[T any] struct {
	mu      sync.RWMutex
	kind    string
	plugins map[string]T
}

var (
	_ pluginport.PaymentPluginRegistry = (*Registry[pluginport.PaymentPlugin])(nil)
	_ pluginport.RetryPluginRegistry   = (*Registry[pluginport.RetryPolicyPlugin])(nil)
)

// NewPaymentPluginRegistry creates an empty payment plugin registry
func NewPaymentPluginRegistry() *Registry[pluginport.PaymentPlugin] {
	return newRegistry[pluginport.PaymentPlugin]("payment")
}

// NewRetryPluginRegistry creates an empty retry policy plugin registry
func NewRetryPluginRegistry() *Registry[pluginport.RetryPolicyPlugin] {
	return newRegistry[pluginport.RetryPolicyPlugin]("retry")
}

func newRegistry[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, plugins: make(map[string]T)}
}

// Register adds or replaces a plugin
func (r *Registry[T]) Register(name string, p T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[name] = p
}

// Get returns the plugin registered under name
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plugins[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s plugin %q", errs.ErrUnknownPlugin, r.kind, name)
	}
	return p, nil
}

// Names lists the registered plugin names in sorted order
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
