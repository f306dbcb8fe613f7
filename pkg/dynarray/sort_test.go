package dynarray_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/dynarray/pkg/dynarray"
)

type Task struct {
	Name     string
	Priority int
}

func byPriority(a, b Task) int {
	return compare.Numbers(a.Priority, b.Priority)
}

func MakeTasks(n int) []Task {
	tasks := make([]Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, Task{
			Name:     fmt.Sprintf("%s#%d", randomdata.SillyName(), i),
			Priority: randomdata.Number(1, 4),
		})
	}
	return tasks
}

func TestArray_Sort(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		tasks = let.Var[[]Task](s, nil)
		arr   = let.Var(s, func(t *testcase.T) *dynarray.Array[Task] {
			a := dynarray.New[Task]()
			a.Append(tasks.Get(t)...)
			return a
		})
	)
	act := let.Act(func(t *testcase.T) error {
		return arr.Get(t).Sort(byPriority)
	})

	s.Test("[5,3,8,1] sorted ascending", func(t *testcase.T) {
		a := dynarray.New[int]()
		a.Append(5, 3, 8, 1)
		assert.NoError(t, a.Sort(compare.Numbers[int]))
		assert.Equal(t, []int{1, 3, 5, 8}, a.ToSlice())
	})

	s.Test("51 integers in descending order", func(t *testcase.T) {
		a := dynarray.New[int]()
		for i := 51; 0 < i; i-- {
			a.Append(i)
		}
		assert.NoError(t, a.Sort(compare.Numbers[int]))

		exp := make([]int, 0, 51)
		for i := 1; i <= 51; i++ {
			exp = append(exp, i)
		}
		assert.Equal(t, exp, a.ToSlice())
	})

	s.Test("the comparison alone defines the order", func(t *testcase.T) {
		a := dynarray.New[int]()
		a.Append(5, 3, 8, 1)
		assert.NoError(t, a.Sort(func(a, b int) int { return compare.Numbers(b, a) }))
		assert.Equal(t, []int{8, 5, 3, 1}, a.ToSlice())
	})

	s.Test("nil comparison yields ErrInvalidArgument", func(t *testcase.T) {
		a := dynarray.New[int]()
		a.Append(2, 1)
		assert.ErrorIs(t, a.Sort(nil), dynarray.ErrInvalidArgument)
		assert.Equal(t, []int{2, 1}, a.ToSlice())
	})

	s.When("length is within the merge sort threshold", func(s *testcase.Spec) {
		tasks.Let(s, func(t *testcase.T) []Task {
			return MakeTasks(t.Random.IntBetween(2, dynarray.SortThreshold))
		})

		s.Then("tasks with the same priority keep their original order", func(t *testcase.T) {
			assert.NoError(t, act(t))

			exp := slices.Clone(tasks.Get(t))
			slices.SortStableFunc(exp, byPriority)
			assert.Equal(t, exp, arr.Get(t).ToSlice())
		})

		s.And("the length is exactly the threshold", func(s *testcase.Spec) {
			tasks.Let(s, func(t *testcase.T) []Task {
				return MakeTasks(dynarray.SortThreshold)
			})

			s.Then("the sort is still stable", func(t *testcase.T) {
				assert.NoError(t, act(t))

				exp := slices.Clone(tasks.Get(t))
				slices.SortStableFunc(exp, byPriority)
				assert.Equal(t, exp, arr.Get(t).ToSlice())
			})
		})
	})

	s.When("length is above the merge sort threshold", func(s *testcase.Spec) {
		tasks.Let(s, func(t *testcase.T) []Task {
			return MakeTasks(t.Random.IntBetween(dynarray.SortThreshold+1, dynarray.SortThreshold*10))
		})

		s.Then("tasks are ordered by priority", func(t *testcase.T) {
			assert.NoError(t, act(t))

			got := arr.Get(t).ToSlice()
			assert.True(t, slices.IsSortedFunc(got, byPriority))
			assert.ContainsExactly(t, tasks.Get(t), got)
		})

		s.Then("length and capacity are unchanged", func(t *testcase.T) {
			l, c := arr.Get(t).Len(), arr.Get(t).Cap()
			assert.NoError(t, act(t))
			assert.Equal(t, l, arr.Get(t).Len())
			assert.Equal(t, c, arr.Get(t).Cap())
		})
	})

	s.When("the array is empty", func(s *testcase.Spec) {
		tasks.LetValue(s, nil)

		s.Then("sorting is a no-op", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.True(t, arr.Get(t).IsEmpty())
		})
	})
}

func BenchmarkArray_Sort(b *testing.B) {
	for _, n := range []int{dynarray.SortThreshold, dynarray.SortThreshold * 20} {
		tasks := MakeTasks(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				a := dynarray.New[Task]()
				a.Append(tasks...)
				_ = a.Sort(byPriority)
			}
		})
	}
}
