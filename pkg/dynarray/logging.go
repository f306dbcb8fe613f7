package dynarray

import (
	"context"

	"go.llib.dev/frameless/pkg/logging"
)

// loggable is implemented by every Array instantiation,
// which lets a single logging mapping cover all element types.
type loggable interface {
	logDetail() logging.Detail
}

var _ = logging.RegisterType[loggable](func(ctx context.Context, v loggable) logging.Detail {
	return v.logDetail()
})

func (a *Array[T]) logDetail() logging.Detail {
	return logging.Fields{
		"length":   a.Len(),
		"capacity": a.Cap(),
	}
}
