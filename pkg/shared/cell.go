// Package shared provides a single mutable state block that any number of
// handles observe through a common reference. Copying a handle never copies
// the state: every holder of a *Cell reads and writes the same value, which is
// the monostate alternative to funneling everything through one singleton.
package shared

import "sync"

// Cell is a mutex-guarded value shared by reference. The zero value is ready
// to use and holds the zero value of T.
type Cell[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewCell returns a cell seeded with initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Load returns the current value.
func (c *Cell[T]) Load() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Store replaces the current value.
func (c *Cell[T]) Store(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}

// Update applies fn to the current value under the lock and returns the
// result. fn must not call back into the cell.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = fn(c.value)
	return c.value
}
