package dynarray

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrIndexOutOfRange is returned when an index violates the bounds of an operation.
	ErrIndexOutOfRange errorkit.Error = "ErrIndexOutOfRange"
	// ErrInvalidArgument is returned when a required argument is nil.
	ErrInvalidArgument errorkit.Error = "ErrInvalidArgument"
)
