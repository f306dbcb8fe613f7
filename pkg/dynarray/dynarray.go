// Package dynarray implements a growable, random-access sequence container
// that manages its own capacity and sorts itself in place.
//
// The container is not safe for concurrent use.
// Callers who share an Array between goroutines must guard it with their own lock.
package dynarray

import (
	"fmt"
	"iter"
	"reflect"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/option"
)

// DefaultCapacity is the number of slots an Array allocates on construction and after Clear.
const DefaultCapacity = 10

// Array is a contiguous, growable sequence of T values.
//
// The zero value is an empty Array ready to use.
type Array[T any] struct {
	buffer []T
	size   int
	equal  func(a, b T) bool
}

// New returns an empty Array with DefaultCapacity slots already allocated.
func New[T any](opts ...Option[T]) *Array[T] {
	c := option.ToConfig(opts)
	return &Array[T]{
		buffer: make([]T, DefaultCapacity),
		equal:  c.Equal,
	}
}

func (a *Array[T]) init() {
	if a.buffer == nil {
		a.buffer = make([]T, DefaultCapacity)
	}
}

// Len returns the number of elements in the Array.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.size
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	if a.buffer == nil {
		return DefaultCapacity
	}
	return len(a.buffer)
}

func (a *Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// Append adds the values to the end of the Array in the order they were given.
func (a *Array[T]) Append(vs ...T) {
	for _, v := range vs {
		a.append(v)
	}
}

func (a *Array[T]) append(v T) {
	a.init()
	if a.size == len(a.buffer) {
		a.grow()
	}
	a.buffer[a.size] = v
	a.size++
}

// AppendAll appends every value yielded by vs.
func (a *Array[T]) AppendAll(vs iter.Seq[T]) error {
	if vs == nil {
		return ErrInvalidArgument.F("nil sequence given to AppendAll")
	}
	for v := range vs {
		a.append(v)
	}
	return nil
}

// Insert places v at index and shifts every element from index onwards one slot to the right.
// Inserting at Len() is the same as Append.
func (a *Array[T]) Insert(index int, v T) error {
	if index < 0 || a.Len() < index {
		return ErrIndexOutOfRange.F("insert index %d is outside of [0, %d]", index, a.Len())
	}
	a.init()
	if a.size == len(a.buffer) {
		a.grow()
	}
	for i := a.size; index < i; i-- {
		a.buffer[i] = a.buffer[i-1]
	}
	a.buffer[index] = v
	a.size++
	return nil
}

// Lookup returns the value at the given index.
// Any index outside of [0, Len()) is reported as not found.
func (a *Array[T]) Lookup(index int) (T, bool) {
	if index < 0 || a.Len() <= index {
		var zero T
		return zero, false
	}
	return a.buffer[index], true
}

// Get returns the value at the given index.
// An index past the last element reports not found,
// while a negative index is an ErrIndexOutOfRange.
func (a *Array[T]) Get(index int) (T, bool, error) {
	if index < 0 {
		var zero T
		return zero, false, ErrIndexOutOfRange.F("negative index: %d", index)
	}
	v, ok := a.Lookup(index)
	return v, ok, nil
}

// RemoveAt removes the value at index and returns it.
// The capacity of the Array is left untouched.
func (a *Array[T]) RemoveAt(index int) (T, bool, error) {
	var zero T
	if index < 0 {
		return zero, false, ErrIndexOutOfRange.F("negative index: %d", index)
	}
	if a.Len() <= index {
		return zero, false, nil
	}
	removed := a.buffer[index]
	for i := index; i < a.size-1; i++ {
		a.buffer[i] = a.buffer[i+1]
	}
	a.size--
	a.buffer[a.size] = zero
	return removed, true, nil
}

// RemoveValue removes the first element that is equal to v.
// It reports whether an element was removed.
func (a *Array[T]) RemoveValue(v T) (bool, error) {
	if isNil(v) {
		return false, ErrInvalidArgument.F("nil value given to RemoveValue")
	}
	eq := a.equal
	if eq == nil {
		eq = equal[T]
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(v, a.buffer[i]) {
			continue
		}
		_, ok, err := a.RemoveAt(i)
		return ok, err
	}
	return false, nil
}

// Clear drops every element and replaces the buffer with a fresh one of DefaultCapacity.
func (a *Array[T]) Clear() {
	a.buffer = make([]T, DefaultCapacity)
	a.size = 0
}

// grow doubles the capacity.
func (a *Array[T]) grow() {
	buffer := make([]T, len(a.buffer)*2)
	copy(buffer, a.buffer[:a.size])
	a.buffer = buffer
}

// Values iterates over the elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(a.buffer[i]) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the elements.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.Len())
	if 0 < len(out) {
		copy(out, a.buffer[:a.size])
	}
	return out
}

func (a *Array[T]) String() string {
	return fmt.Sprintf("Array{values=%v, length=%d}", a.ToSlice(), a.Len())
}

func equal[T any](a, b T) bool {
	// interface element types may hold values of different dynamic types
	if reflect.TypeOf(any(a)) != reflect.TypeOf(any(b)) {
		return false
	}
	return reflectkit.Equal(a, b)
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	return !rv.IsValid() || reflectkit.IsValueNil(rv)
}
