package dynarray

import "go.llib.dev/frameless/port/option"

type Option[T any] option.Option[Config[T]]

type Config[T any] struct {
	// Equal is used by RemoveValue to find the element to remove.
	// When nil, values are compared deeply, and an Equal method on T is honoured.
	Equal func(a, b T) bool
}

func (c Config[T]) Configure(t *Config[T]) {
	if c.Equal != nil {
		t.Equal = c.Equal
	}
}

// EqualFunc sets the equality used to match values in RemoveValue.
func EqualFunc[T any](fn func(a, b T) bool) Option[T] {
	return Config[T]{Equal: fn}
}
