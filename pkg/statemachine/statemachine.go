// Package statemachine implements Rob Pike's state-function pattern: each
// state is a function that does its work and returns the next state function,
// or nil to terminate.
package statemachine

import (
	"sync"
)

// StateFn is a state of the machine operating on entity T.
type StateFn[T any] func(*T) StateFn[T]

// Machine drives an entity through StateFn transitions. Reads of the current
// state are safe across goroutines; the entity itself is guarded by its owner.
type Machine[T any] struct {
	entity  *T
	current StateFn[T]
	mu      sync.RWMutex
}

// New creates a machine positioned at initial without running it.
func New[T any](entity *T, initial StateFn[T]) *Machine[T] {
	return &Machine[T]{
		entity:  entity,
		current: initial,
	}
}

// Dispatch moves the machine to fn, runs it once, and stores the state it
// returns. Dispatching nil terminates the machine.
func (m *Machine[T]) Dispatch(fn StateFn[T]) {
	m.mu.Lock()
	m.current = fn
	m.mu.Unlock()

	if fn == nil {
		return
	}
	next := fn(m.entity)

	m.mu.Lock()
	m.current = next
	m.mu.Unlock()
}

// Current returns the current state function, nil if terminated.
func (m *Machine[T]) Current() StateFn[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set repositions the machine without executing the state function.
func (m *Machine[T]) Set(fn StateFn[T]) {
	m.mu.Lock()
	m.current = fn
	m.mu.Unlock()
}
