package render

import "github.com/google/uuid"

// Registry maps shape identities to adapter-owned resources. Resources are
// created on first acquisition and released together by Close.
type Registry[T any] struct {
	items   map[uuid.UUID]T
	release func(T)
}

// NewRegistry returns an empty registry. release may be nil.
func NewRegistry[T any](release func(T)) *Registry[T] {
	return &Registry[T]{items: map[uuid.UUID]T{}, release: release}
}

// Acquire returns the resource for id, creating it with create when absent.
// The boolean reports whether create ran.
func (r *Registry[T]) Acquire(id uuid.UUID, create func() T) (T, bool) {
	if v, ok := r.items[id]; ok {
		return v, false
	}
	v := create()
	r.items[id] = v
	return v, true
}

// Get returns the resource for id.
func (r *Registry[T]) Get(id uuid.UUID) (T, bool) {
	v, ok := r.items[id]
	return v, ok
}

// Len returns the number of live resources.
func (r *Registry[T]) Len() int { return len(r.items) }

// Close releases every resource and empties the registry.
func (r *Registry[T]) Close() {
	for id, v := range r.items {
		if r.release != nil {
			r.release(v)
		}
		delete(r.items, id)
	}
}
