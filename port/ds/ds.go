// Package ds contains common interfaces when we wish to express datastruct behaviours
package ds

import "iter"

type ReadOnlyList[T any] interface {
	Values[T]
	Len
}

type List[T any] interface {
	ReadOnlyList[T]
	Appendable[T]
}

type ReadOnlySequence[T any] interface {
	ReadOnlyList[T]
	Lookup(index int) (T, bool)
	// Get returns the value at index.
	// An index past the last element is reported as not found,
	// while a negative index is an error.
	Get(index int) (T, bool, error)
}

// Sequence is an ordered, index addressable List.
type Sequence[T any] interface {
	ReadOnlySequence[T]
	List[T]
	Clearable
	Insert(index int, v T) error
	RemoveAt(index int) (T, bool, error)
	RemoveValue(v T) (bool, error)
}

type Len interface {
	Len() int
}

type Cap interface {
	Cap() int
}

type Appendable[T any] interface {
	Append(vs ...T)
}

type Clearable interface {
	Clear()
	IsEmpty() bool
}

type Values[T any] interface {
	Values() iter.Seq[T]
}

// Sortable is implemented by containers that reorder their own elements in place
// using a three-way comparison function.
//
// cmp returns a negative number when a < b, zero when a == b and a positive number when a > b.
type Sortable[T any] interface {
	Sort(cmp func(a, b T) int) error
}

type SliceConveratble[T any] interface {
	ToSlice() []T
}
