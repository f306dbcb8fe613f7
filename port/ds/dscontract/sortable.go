package dscontract

import (
	"fmt"
	"slices"
	"testing"

	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/dynarray/port/ds"
)

type SortableSubject[T any] interface {
	ds.Sortable[T]
	ds.List[T]
}

type SortableConfig[T any] struct {
	MakeElem func(tb testing.TB) T
	// Compare is the ordering the contract sorts with.
	Compare func(a, b T) int
	// StableUpTo is the largest length at which the subject promises a stable sort.
	// Zero means that stability is not part of the contract.
	StableUpTo int
	// MaxLength is the upper bound for the randomly sized subjects.
	// Defaults to 128.
	MaxLength int
}

func (c SortableConfig[T]) Configure(t *SortableConfig[T]) {
	if c.MakeElem != nil {
		t.MakeElem = c.MakeElem
	}
	if c.Compare != nil {
		t.Compare = c.Compare
	}
	if c.StableUpTo != 0 {
		t.StableUpTo = c.StableUpTo
	}
	if c.MaxLength != 0 {
		t.MaxLength = c.MaxLength
	}
}

func (c SortableConfig[T]) maxLength() int {
	if c.MaxLength == 0 {
		return 128
	}
	return c.MaxLength
}

type SortableOption[T any] option.Option[SortableConfig[T]]

// Sortable verifies that a subject orders its own elements with the supplied comparison.
// The Make function must return an empty subject.
func Sortable[T any, Subject SortableSubject[T]](mk contract.Make[Subject], opts ...SortableOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	if c.Compare == nil {
		panic("dscontract.Sortable requires SortableConfig.Compare")
	}

	fill := func(t *testcase.T, subject Subject, n int) []T {
		vs := random.Slice(n, func() T { return makeElem(t, c.MakeElem) })
		subject.Append(vs...)
		return vs
	}

	isSorted := func(tb testing.TB, vs []T) {
		tb.Helper()
		for i := 1; i < len(vs); i++ {
			assert.True(tb, compare.IsLessOrEqual(c.Compare(vs[i-1], vs[i])),
				assert.MessageF("expected a non-descending order at index %d", i))
		}
	}

	s.Test("empty subject stays empty", func(t *testcase.T) {
		subject := mk(t)
		assert.NoError(t, subject.Sort(c.Compare))
		assert.Equal(t, 0, subject.Len())
	})

	s.Test("nil comparison is rejected", func(t *testcase.T) {
		subject := mk(t)
		vs := fill(t, subject, t.Random.IntBetween(2, 7))
		assert.Error(t, subject.Sort(nil))
		assert.Equal(t, vs, iterkit.Collect(subject.Values()))
	})

	s.Test("values end up in non-descending order", func(t *testcase.T) {
		subject := mk(t)
		vs := fill(t, subject, t.Random.IntBetween(1, c.maxLength()))

		assert.NoError(t, subject.Sort(c.Compare))
		got := iterkit.Collect(subject.Values())
		isSorted(t, got)
		assert.ContainsExactly(t, vs, got)
	})

	s.Test("already sorted input stays sorted", func(t *testcase.T) {
		subject := mk(t)
		vs := random.Slice(t.Random.IntBetween(1, c.maxLength()), func() T { return makeElem(t, c.MakeElem) })
		slices.SortStableFunc(vs, c.Compare)
		subject.Append(vs...)

		assert.NoError(t, subject.Sort(c.Compare))
		got := iterkit.Collect(subject.Values())
		isSorted(t, got)
		assert.ContainsExactly(t, vs, got)
	})

	s.Test("reverse ordered input is sorted", func(t *testcase.T) {
		subject := mk(t)
		vs := random.Slice(t.Random.IntBetween(1, c.maxLength()), func() T { return makeElem(t, c.MakeElem) })
		slices.SortFunc(vs, func(a, b T) int { return c.Compare(b, a) })
		subject.Append(vs...)

		assert.NoError(t, subject.Sort(c.Compare))
		isSorted(t, iterkit.Collect(subject.Values()))
	})

	if 0 < c.StableUpTo {
		s.Test("stable up to the promised length", func(t *testcase.T) {
			subject := mk(t)
			vs := fill(t, subject, t.Random.IntBetween(1, c.StableUpTo))

			// every element is equal, so a stable sort must not move anything
			assert.NoError(t, subject.Sort(func(a, b T) int { return 0 }))
			assert.Equal(t, vs, iterkit.Collect(subject.Values()))
		})
	}

	return s.AsSuite(fmt.Sprintf("Sortable[%s]", reflectkit.TypeOf[T]().String()))
}
