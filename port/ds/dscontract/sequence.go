package dscontract

import (
	"fmt"
	"slices"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/dynarray/port/ds"
)

type SequenceConfig[T any] struct {
	// MakeElem must return values that are distinct from each other,
	// otherwise RemoveValue expectations can't be verified.
	MakeElem func(tb testing.TB) T
}

func (sc SequenceConfig[T]) Configure(t *SequenceConfig[T]) {
	if sc.MakeElem != nil {
		t.MakeElem = sc.MakeElem
	}
}

func (sc SequenceConfig[T]) ToListConfig() ListConfig[T] {
	return ListConfig[T](sc)
}

type SequenceOption[T any] option.Option[SequenceConfig[T]]

// Sequence verifies the index based behaviour of a ds.Sequence.
// The Make function must return an empty sequence.
func Sequence[T any](mk contract.Make[ds.Sequence[T]], opts ...SequenceOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	seq := let.Var(s, func(t *testcase.T) ds.Sequence[T] {
		return mk(t)
	})

	makeValues := func(t *testcase.T) []T {
		return random.Slice(t.Random.IntBetween(3, 7), func() T {
			return makeElem(t, c.MakeElem)
		})
	}

	OrderedList[T](mk, c.ToListConfig()).Spec(s)

	s.Before(func(t *testcase.T) {
		t.OnFail(func() {
			t.Log("sequence:", iterkit.Collect(seq.Get(t).Values()))
		})
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		var index = let.Var[int](s, nil)

		act := func(t *testcase.T) (T, bool, error) {
			return seq.Get(t).Get(index.Get(t))
		}

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(0, 42)
				})

				s.Then("the requested value is reported to be missing", func(t *testcase.T) {
					_, ok, err := act(t)
					assert.NoError(t, err)
					assert.False(t, ok)
				})
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			values := let.Var(s, makeValues)

			seq.Let(s, func(t *testcase.T) ds.Sequence[T] {
				seq := seq.Super(t)
				seq.Append(values.Get(t)...)
				return seq
			})

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the expected value is returned", func(t *testcase.T) {
					got, ok, err := act(t)
					assert.NoError(t, err)
					assert.True(t, ok)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})

				s.Then("it is consistent with Lookup", func(t *testcase.T) {
					got, _, _ := act(t)
					v, ok := seq.Get(t).Lookup(index.Get(t))
					assert.True(t, ok)
					assert.Equal(t, v, got)
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("the requested value is reported to be missing", func(t *testcase.T) {
					_, ok, err := act(t)
					assert.NoError(t, err)
					assert.False(t, ok)
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(-42, -1)
				})

				s.Then("an error is returned", func(t *testcase.T) {
					_, ok, err := act(t)
					assert.Error(t, err)
					assert.False(t, ok)
				})

				s.Then("Lookup reports the value as missing", func(t *testcase.T) {
					_, ok := seq.Get(t).Lookup(index.Get(t))
					assert.False(t, ok)
				})
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return makeElem(t, c.MakeElem)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Insert(index.Get(t), value.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.And("index is zero", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("the value becomes the only element", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, []T{value.Get(t)}, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(1, 42)
				})

				s.Then("it fails without changing the sequence", func(t *testcase.T) {
					assert.Error(t, act(t))
					assert.Equal(t, 0, seq.Get(t).Len())
				})
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			// A B C <- insert X at 1
			// 0 1 2
			//
			// -> A X B C
			values := let.Var(s, makeValues)

			seq.Let(s, func(t *testcase.T) ds.Sequence[T] {
				seq := seq.Super(t)
				seq.Append(values.Get(t)...)
				return seq
			})

			s.And("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("elements from the index are shifted to the right", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := slices.Insert(slices.Clone(values.Get(t)), index.Get(t), value.Get(t))
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})

				s.Then("length is increased by one", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, len(values.Get(t))+1, seq.Get(t).Len())
				})
			})

			s.And("index equals the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it behaves like append", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := append(slices.Clone(values.Get(t)), value.Get(t))
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is beyond the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("it fails without changing the sequence", func(t *testcase.T) {
					assert.Error(t, act(t))
					assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(-42, -1)
				})

				s.Then("it fails without changing the sequence", func(t *testcase.T) {
					assert.Error(t, act(t))
					assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})
		})
	})

	s.Describe("#RemoveAt", func(s *testcase.Spec) {
		var index = let.Var[int](s, nil)

		act := func(t *testcase.T) (T, bool, error) {
			return seq.Get(t).RemoveAt(index.Get(t))
		}

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("nothing is removed", func(t *testcase.T) {
				_, ok, err := act(t)
				assert.NoError(t, err)
				assert.False(t, ok)
				assert.Equal(t, 0, seq.Get(t).Len())
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			values := let.Var(s, makeValues)

			seq.Let(s, func(t *testcase.T) ds.Sequence[T] {
				seq := seq.Super(t)
				seq.Append(values.Get(t)...)
				return seq
			})

			s.And("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the removed element is returned", func(t *testcase.T) {
					got, ok, err := act(t)
					assert.NoError(t, err)
					assert.True(t, ok)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})

				s.Then("the following elements are shifted to the left", func(t *testcase.T) {
					_, _, err := act(t)
					assert.NoError(t, err)

					exp := slices.Delete(slices.Clone(values.Get(t)), index.Get(t), index.Get(t)+1)
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})

				s.Then("inserting the removed element at the same index restores the sequence", func(t *testcase.T) {
					got, _, err := act(t)
					assert.NoError(t, err)
					assert.NoError(t, seq.Get(t).Insert(index.Get(t), got))
					assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is past the last element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("nothing is removed", func(t *testcase.T) {
					_, ok, err := act(t)
					assert.NoError(t, err)
					assert.False(t, ok)
					assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(-42, -1)
				})

				s.Then("it fails without changing the sequence", func(t *testcase.T) {
					_, ok, err := act(t)
					assert.Error(t, err)
					assert.False(t, ok)
					assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})
		})
	})

	s.Describe("#RemoveValue", func(s *testcase.Spec) {
		var (
			values = let.Var(s, makeValues)
			value  = let.Var(s, func(t *testcase.T) T {
				return makeElem(t, c.MakeElem)
			})
		)
		act := let.Act2(func(t *testcase.T) (bool, error) {
			return seq.Get(t).RemoveValue(value.Get(t))
		})

		seq.Let(s, func(t *testcase.T) ds.Sequence[T] {
			seq := seq.Super(t)
			seq.Append(values.Get(t)...)
			return seq
		})

		s.When("the value is not part of the sequence", func(s *testcase.Spec) {
			s.Then("false is reported and the sequence is unchanged", func(t *testcase.T) {
				ok, err := act(t)
				assert.NoError(t, err)
				assert.False(t, ok)
				assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
			})
		})

		s.When("the value is present multiple times", func(s *testcase.Spec) {
			index := let.Var(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})

			seq.Let(s, func(t *testcase.T) ds.Sequence[T] {
				seq := seq.Super(t)
				assert.NoError(t, seq.Insert(index.Get(t), value.Get(t)))
				seq.Append(value.Get(t))
				return seq
			})

			s.Then("only the first occurrence is removed", func(t *testcase.T) {
				ok, err := act(t)
				assert.NoError(t, err)
				assert.True(t, ok)

				exp := append(slices.Clone(values.Get(t)), value.Get(t))
				assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
			})

			s.Then("length is decreased by one", func(t *testcase.T) {
				before := seq.Get(t).Len()
				_, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, before-1, seq.Get(t).Len())
			})
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).Clear()
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			seq.Let(s, func(t *testcase.T) ds.Sequence[T] {
				seq := seq.Super(t)
				seq.Append(makeValues(t)...)
				return seq
			})

			s.Then("the sequence becomes empty", func(t *testcase.T) {
				assert.False(t, seq.Get(t).IsEmpty())
				act(t)
				assert.True(t, seq.Get(t).IsEmpty())
				assert.Equal(t, 0, seq.Get(t).Len())
				assert.Empty(t, iterkit.Collect(seq.Get(t).Values()))
			})

			s.Then("the sequence is reusable afterwards", func(t *testcase.T) {
				act(t)
				vs := makeValues(t)
				seq.Get(t).Append(vs...)
				assert.Equal(t, vs, iterkit.Collect(seq.Get(t).Values()))
			})
		})
	})

	s.Test("random operations keep the sequence in line with a plain slice", func(t *testcase.T) {
		var (
			subject = seq.Get(t)
			model   []T
		)
		t.Random.Repeat(64, 128, func() {
			v := makeElem(t, c.MakeElem)
			switch t.Random.IntN(4) {
			case 0:
				subject.Append(v)
				model = append(model, v)
			case 1:
				index := t.Random.IntBetween(0, len(model))
				assert.NoError(t, subject.Insert(index, v))
				model = slices.Insert(model, index, v)
			case 2:
				if len(model) == 0 {
					return
				}
				index := t.Random.IntN(len(model))
				got, ok, err := subject.RemoveAt(index)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, model[index], got)
				model = slices.Delete(model, index, index+1)
			case 3:
				index := t.Random.IntBetween(0, len(model)+3)
				got, ok, err := subject.Get(index)
				assert.NoError(t, err)
				assert.Equal(t, index < len(model), ok)
				if ok {
					assert.Equal(t, model[index], got)
				}
			}
			assert.Equal(t, len(model), subject.Len())
			if capper, ok := any(subject).(ds.Cap); ok {
				assert.True(t, subject.Len() <= capper.Cap())
			}
		})
		if len(model) == 0 {
			assert.Empty(t, iterkit.Collect(subject.Values()))
			return
		}
		assert.Equal(t, model, iterkit.Collect(subject.Values()))
	})

	return s.AsSuite(fmt.Sprintf("Sequence[%s]", reflectkit.TypeOf[T]().String()))
}
