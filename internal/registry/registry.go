// Package registry provides a concurrent name-to-value registry used for
// dynamic registration of pluggable implementations.
package registry

import (
	"sort"

	"github.com/alphadose/haxmap"
)

// Registry maps names to values of T. All operations are safe for concurrent
// use.
type Registry[T any] interface {
	Get(name string) (T, bool)
	Add(name string, value T)
	GetOrAdd(name string, value func() T) (T, bool)
	Del(name string)
	// Names returns the registered names in lexical order.
	Names() []string
	Len() int
}

type registry[T any] struct {
	values *haxmap.Map[string, T]
}

// New returns an empty registry.
func New[T any]() Registry[T] {
	return &registry[T]{
		values: haxmap.New[string, T](),
	}
}

func (r *registry[T]) Get(name string) (T, bool) {
	return r.values.Get(name)
}

// Add registers value under name, replacing any previous registration.
func (r *registry[T]) Add(name string, value T) {
	r.values.Set(name, value)
}

func (r *registry[T]) GetOrAdd(name string, valueFn func() T) (T, bool) {
	return r.values.GetOrCompute(name, valueFn)
}

func (r *registry[T]) Del(name string) {
	r.values.Del(name)
}

func (r *registry[T]) Names() []string {
	names := make([]string, 0, r.values.Len())
	r.values.ForEach(func(name string, _ T) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

func (r *registry[T]) Len() int {
	return int(r.values.Len())
}
