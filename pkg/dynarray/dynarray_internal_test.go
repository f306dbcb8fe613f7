package dynarray

import (
	"slices"
	"testing"

	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func makeArray(tb testing.TB, vs ...int) *Array[int] {
	tb.Helper()
	a := New[int]()
	a.Append(vs...)
	return a
}

func Test_grow(t *testing.T) {
	a := makeArray(t, 1, 2, 3)
	assert.Equal(t, DefaultCapacity, len(a.buffer))

	a.grow()
	assert.Equal(t, DefaultCapacity*2, len(a.buffer))
	assert.Equal(t, 3, a.size)
	assert.Equal(t, []int{1, 2, 3}, a.buffer[:a.size])
}

func Test_Cap_zeroValueDoesNotAllocate(t *testing.T) {
	var a Array[int]
	assert.Equal(t, DefaultCapacity, a.Cap())
	assert.True(t, a.buffer == nil)

	a.Append(1)
	assert.Equal(t, DefaultCapacity, len(a.buffer))
}

func Test_RemoveAt_vacatedSlotIsZeroed(t *testing.T) {
	a := New[*int]()
	x, y := 1, 2
	a.Append(&x, &y)

	_, ok, err := a.RemoveAt(0)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, a.buffer[1])
}

func Test_partition(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the pivot lands on its final index", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(2, 64), func() int { return t.Random.IntN(32) })
		a := makeArray(t, vs...)
		pivot := vs[len(vs)-1]

		p := a.partition(0, a.size-1, compare.Numbers[int])
		assert.Equal(t, pivot, a.buffer[p])
		for i := 0; i < p; i++ {
			assert.True(t, a.buffer[i] < pivot)
		}
		for i := p + 1; i < a.size; i++ {
			assert.True(t, pivot <= a.buffer[i])
		}
		assert.ContainsExactly(t, vs, a.ToSlice())
	})

	s.Test("only the given range is touched", func(t *testcase.T) {
		a := makeArray(t, 9, 3, 7, 1, 5, 0)
		p := a.partition(1, 4, compare.Numbers[int])
		assert.Equal(t, 3, p)
		assert.Equal(t, []int{9, 3, 1, 5, 7, 0}, a.ToSlice())
	})
}

func Test_merge(t *testing.T) {
	a := makeArray(t, 1, 4, 6, 2, 3, 7)
	aux := make([]int, a.size)
	a.merge(0, 2, 5, compare.Numbers[int], aux)
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7}, a.ToSlice())
}

func Test_mergeSort(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("sorts the whole range", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(1, SortThreshold), t.Random.Int)
		a := makeArray(t, vs...)
		a.mergeSort(0, a.size-1, compare.Numbers[int], make([]int, a.size))

		exp := slices.Clone(vs)
		slices.Sort(exp)
		assert.Equal(t, exp, a.ToSlice())
	})
}

func Test_quickSort(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("sorts random input", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(SortThreshold+1, 1024), t.Random.Int)
		a := makeArray(t, vs...)
		a.quickSort(0, a.size-1, compare.Numbers[int])

		exp := slices.Clone(vs)
		slices.Sort(exp)
		assert.Equal(t, exp, a.ToSlice())
	})

	s.Test("sorted input of a large length", func(t *testcase.T) {
		const n = 1 << 12
		a := New[int]()
		for i := 0; i < n; i++ {
			a.Append(i)
		}
		a.quickSort(0, a.size-1, compare.Numbers[int])
		assert.True(t, slices.IsSorted(a.ToSlice()))
	})

	s.Test("all equal values", func(t *testcase.T) {
		a := makeArray(t, slices.Repeat([]int{7}, 200)...)
		a.quickSort(0, a.size-1, compare.Numbers[int])
		assert.Equal(t, slices.Repeat([]int{7}, 200), a.ToSlice())
	})
}
