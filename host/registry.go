package host

import (
	"sync"

	"github.com/vizkit/explorer/errors"
)

// Registry maps module ids to factories, preserving registration order for
// stable menu listings.
type Registry struct {
	factories map[string]Factory
	order     []string
	mu        sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under the given id.
func (r *Registry) Register(id string, f Factory) error {
	if id == "" {
		return errors.New(errors.PhaseRegister, errors.KindInvalidValue).
			Detail("empty module id").
			Build()
	}
	if f == nil {
		return errors.New(errors.PhaseRegister, errors.KindInvalidValue).
			Module(id).
			Detail("nil factory").
			Build()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.factories[id]; dup {
		return errors.DuplicateModule(id)
	}
	r.factories[id] = f
	r.order = append(r.order, id)
	return nil
}

// MustRegister is Register for static builtin wiring; it panics on error.
func (r *Registry) MustRegister(id string, f Factory) {
	if err := r.Register(id, f); err != nil {
		panic(err)
	}
}

// Lookup returns the factory for an id.
func (r *Registry) Lookup(id string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[id]
	return f, ok
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Metas instantiates each factory briefly to collect catalog metadata, in
// registration order.
func (r *Registry) Metas() []Meta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Meta, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.factories[id]().Meta())
	}
	return out
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
