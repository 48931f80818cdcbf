// Package observe is a minimal reactive-value library used to exercise the
// observable type in shapecheck. A Cell holds a mutable value; its
// Observable view is a plain zero-argument function, which is the invocable
// form the checker reads contents from.
package observe

import (
	"reflect"
	"sync"
)

// Cell is a concurrency-safe mutable container.
type Cell[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewCell returns a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Get returns the current contents.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

// Set replaces the contents.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = v
}

// Observable returns the invocable view of the cell. Successive calls
// observe later Sets.
func (c *Cell[T]) Observable() func() T {
	return c.Get
}

// Lib satisfies the shapecheck ObservableLibrary contract. It recognizes
// observables by shape: any function value that takes no arguments and
// returns exactly one.
type Lib struct{}

// IsObservable reports whether v is an observable in this library's sense.
func (Lib) IsObservable(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Func && t.NumIn() == 0 && t.NumOut() == 1
}
