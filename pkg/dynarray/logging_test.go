package dynarray_test

import (
	"context"
	"testing"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/dynarray/pkg/dynarray"
)

func TestArray_loggingDetail(t *testing.T) {
	l, out := logging.Stub(t)

	a := dynarray.New[int]()
	a.Append(1, 2, 3)

	l.Info(context.Background(), "sorted", logging.Field("array", a))
	assert.Contains(t, out.String(), `"array":{`)
	assert.Contains(t, out.String(), `"length":3`)
	assert.Contains(t, out.String(), `"capacity":10`)
}
