// Package pool recycles the per-parse scratch allocations — token slices and
// value buffers — that would otherwise be reallocated on every invocation of
// the engine. Pooled objects are strictly invocation-scoped: callers take one
// at the start of a parse and return it before the result escapes.
package pool

import "sync"

// Pool is a generic, type-safe object pool with an optional reset hook run
// before each reuse.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// NewPool creates a pool backed by the given factory.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return factory() },
		},
	}
}

// NewPoolWithReset creates a pool whose objects are reset before reuse.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// SlicePool recycles slices of T, handing them out empty with their previous
// capacity intact.
type SlicePool[T any] struct {
	pool Pool[[]T]
}

// NewSlicePool creates a slice pool whose fresh slices start with the given
// capacity.
func NewSlicePool[T any](capacity int) *SlicePool[T] {
	return &SlicePool[T]{
		pool: Pool[[]T]{
			pool: sync.Pool{
				New: func() any {
					s := make([]T, 0, capacity)
					return &s
				},
			},
		},
	}
}

// Get returns an empty slice ready to append into.
func (sp *SlicePool[T]) Get() *[]T {
	s := sp.pool.Get()
	*s = (*s)[:0]
	return s
}

// Put returns a slice to the pool. The caller must not retain it.
func (sp *SlicePool[T]) Put(s *[]T) {
	if s == nil {
		return
	}
	sp.pool.Put(s)
}
