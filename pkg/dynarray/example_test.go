package dynarray_test

import (
	"fmt"
	"slices"
	"strings"

	"go.llib.dev/frameless/pkg/compare"

	"go.llib.dev/dynarray/pkg/dynarray"
)

func ExampleNew() {
	a := dynarray.New[int]()
	a.Append(5, 3, 8, 1)

	_ = a.Sort(compare.Numbers[int])
	fmt.Println(a.ToSlice())
	// Output: [1 3 5 8]
}

func ExampleArray_Insert() {
	a := dynarray.New[string]()
	a.Append("A", "C")

	if err := a.Insert(1, "B"); err != nil {
		panic(err)
	}
	fmt.Println(a)
	// Output: Array{values=[A B C], length=3}
}

func ExampleArray_RemoveAt() {
	a := dynarray.New[string]()
	a.Append("x", "y", "z")

	v, ok, err := a.RemoveAt(0)
	fmt.Println(v, ok, err, a.ToSlice())
	// Output: x true <nil> [y z]
}

func ExampleArray_RemoveValue() {
	a := dynarray.New[string]()
	a.Append("p", "q", "p")

	ok, _ := a.RemoveValue("p")
	fmt.Println(ok, a.ToSlice())
	// Output: true [q p]
}

func ExampleArray_AppendAll() {
	a := dynarray.New[string]()
	_ = a.AppendAll(slices.Values(strings.Fields("foo bar baz")))
	fmt.Println(a.Len(), a.Cap())
	// Output: 3 10
}

func ExampleEqualFunc() {
	a := dynarray.New(dynarray.EqualFunc(strings.EqualFold))
	a.Append("Foo", "Bar")

	ok, _ := a.RemoveValue("foo")
	fmt.Println(ok, a.ToSlice())
	// Output: true [Bar]
}
