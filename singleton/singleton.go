// SPDX-License-Identifier: MIT

// Package singleton - registry and wrappers.

package singleton

import (
	"log/slog"
	"reflect"
	"sync"
)

// slot holds one instance. mu serializes construction of this slot only.
type slot struct {
	mu    sync.Mutex
	built bool
	value any
}

// Registry maps a type to its single instance.
type Registry struct {
	mu     sync.Mutex // guards slots (not construction)
	slots  map[reflect.Type]*slot
	logger *slog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	o := gatherOptions(opts...)

	return &Registry{slots: make(map[reflect.Type]*slot), logger: o.logger}
}

// std backs Wrap0..Wrap3. It lives for the whole process.
var std = NewRegistry()

// slotFor returns the slot of key, creating it empty if needed.
func (r *Registry) slotFor(key reflect.Type) *slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[key]
	if !ok {
		s = &slot{}
		r.slots[key] = s
	}

	return s
}

// Len reports how many slots hold a built instance.
func (r *Registry) Len() int {
	r.mu.Lock()
	slots := make([]*slot, 0, len(r.slots))
	for _, s := range r.slots {
		slots = append(slots, s)
	}
	r.mu.Unlock()

	n := 0
	for _, s := range slots {
		s.mu.Lock()
		if s.built {
			n++
		}
		s.mu.Unlock()
	}

	return n
}

// Get returns the instance of T held by r, calling build to create it on
// first use. build runs at most once per successful construction; if it
// panics the slot stays empty and the next caller retries.
func Get[T any](r *Registry, build func() T) T {
	key := reflect.TypeFor[T]()
	s := r.slotFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.built {
		s.value = build()
		s.built = true
		r.logger.Debug("singleton constructed", "type", key.String())
	}
	v, _ := s.value.(T) // nil interface values come back as the zero T

	return v
}

// Lookup returns the instance of T if one has been built.
func Lookup[T any](r *Registry) (T, bool) {
	s := r.slotFor(reflect.TypeFor[T]())

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.built {
		var zero T
		return zero, false
	}
	v, _ := s.value.(T)

	return v, true
}

// Wrap0 wraps a niladic constructor.
//
// The slot is keyed by T alone. Constructors returning the same interface
// type (error, io.Reader, any) share one instance even if they are
// unrelated; return a concrete or named type to get a slot of your own.
func Wrap0[T any](ctor func() T) func() T {
	return func() T { return Get(std, ctor) }
}

// Wrap1 wraps a one-argument constructor; later arguments are discarded.
// Slots are keyed by T as in Wrap0, interface result types included.
func Wrap1[T, A any](ctor func(A) T) func(A) T {
	return func(a A) T {
		return Get(std, func() T { return ctor(a) })
	}
}

// Wrap2 wraps a two-argument constructor; later arguments are discarded.
// Slots are keyed by T as in Wrap0, interface result types included.
func Wrap2[T, A, B any](ctor func(A, B) T) func(A, B) T {
	return func(a A, b B) T {
		return Get(std, func() T { return ctor(a, b) })
	}
}

// Wrap3 wraps a three-argument constructor; later arguments are discarded.
// Slots are keyed by T as in Wrap0, interface result types included.
func Wrap3[T, A, B, C any](ctor func(A, B, C) T) func(A, B, C) T {
	return func(a A, b B, c C) T {
		return Get(std, func() T { return ctor(a, b, c) })
	}
}
