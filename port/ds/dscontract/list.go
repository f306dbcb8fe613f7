package dscontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/dynarray/port/ds"
)

type ListOption[T any] interface {
	option.Option[ListConfig[T]]
}

type ListConfig[T any] struct {
	MakeElem func(testing.TB) T
}

var _ ListOption[any] = ListConfig[any]{}

func (c ListConfig[T]) Configure(o *ListConfig[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
}

func (c ListConfig[T]) makeElem(tb testing.TB) T {
	return makeElem(tb, c.MakeElem)
}

func LenAppendable[T any, Subject interface {
	ds.Appendable[T]
	ds.Len
}](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("append affects length", func(t *testcase.T) {
		subject := mk(t)

		exp := 0
		assert.Equal(t, exp, subject.Len())

		t.Random.Repeat(3, 7, func() {
			subject.Append(c.makeElem(t))
			exp++
			assert.Equal(t, exp, subject.Len())
		})
	})

	s.Test("append many at once increase the length by the sum of appended values", func(t *testcase.T) {
		var (
			list         = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)
		baseLen := list.Len()
		list.Append(expected...)
		assert.Equal(t, len(expected)+baseLen, list.Len())
	})

	s.Test("append without values is a no-op", func(t *testcase.T) {
		list := mk(t)
		baseLen := list.Len()
		list.Append()
		assert.Equal(t, baseLen, list.Len())
	})

	return s.AsSuite(fmt.Sprintf("Len[%s] (appendable)", reflectkit.TypeOf[T]().String()))
}

// OrderedList checks that a List keeps the order in which the values were appended.
func OrderedList[T any, Subject ds.List[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	LenAppendable[T](mk, c).Spec(s)

	s.Test("smoke", func(t *testcase.T) {
		var (
			list         = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)

		var expLen int
		for _, v := range expected {
			assert.Equal(t, expLen, list.Len())
			list.Append(v)
			expLen++
		}

		assert.Equal(t, expected, iterkit.Collect(list.Values()))
	})

	s.Test("ordered", func(t *testcase.T) {
		var (
			list         = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)
		list.Append(expected...)
		if ts, ok := any(list).(ds.SliceConveratble[T]); ok {
			assert.Equal(t, expected, ts.ToSlice())
		}
		assert.Equal(t, expected, iterkit.Collect(list.Values()))
	})

	s.Test("Values can be interrupted early", func(t *testcase.T) {
		list := mk(t)
		list.Append(random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })...)

		var n int
		for range list.Values() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	return s.AsSuite(fmt.Sprintf("ordered List[%s]", reflectkit.TypeOf[T]().String()))
}
