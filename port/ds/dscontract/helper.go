package dscontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/testcase"
)

func makeElem[T any](tb testing.TB, fn func(testing.TB) T) T {
	if fn != nil {
		return fn(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}
