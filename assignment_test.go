package hlorepro

import (
	"strings"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/hlotools/hlorepro/types/shapes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBufferAssignment(t *testing.T) {
	report := `allocation 0: 0x1, size 32768, parameter 0, shape |f32[256,32]|:
allocation 1: 0x2, size 128, output shape is |f32[32]|, maybe-live-out:
`
	assignment, err := ParseBufferAssignment(strings.NewReader(report))
	require.NoError(t, err)
	assert.Equal(t, []int{32768, 128}, assignment.BufferSizes)
	assert.Equal(t, []int{0}, assignment.ParamIDs)
	assert.Equal(t, 1, assignment.OutputID)
	assert.Equal(t, shapes.MakeTuple(shapes.Make(dtypes.F32, 256, 32)), assignment.BufferShapes[0])
	assert.Equal(t, shapes.MakeTuple(shapes.Make(dtypes.F32, 32)), assignment.BufferShapes[1])
	assert.Equal(t, []Role{RoleParameter, RoleOutput}, assignment.Roles)
}

func TestParseBufferAssignmentFullReport(t *testing.T) {
	// A dump the way the compiler emits it: value lines between allocation
	// lines, plus constant and thread-local allocations that carry no role.
	report := `BufferAssignment:
allocation 0: 0x27017c46b600, size 32768, parameter 0, shape |f32[256,32]|:
 value: <3 parameter @0> (size=32768,offset=0): f32[256,32]{1,0}
allocation 1: 0x27017c46b6b0, size 128, output shape is |f32[32]|, maybe-live-out:
 value: <5 reduce @0> (size=128,offset=0): f32[32]{0}
allocation 2: 0x27017c46b760, size 4, constant:
 value: <4 init_value @0> (size=4,offset=0): f32[]
allocation 3: 0x27017c46b810, size 4, thread-local:
 value: <0 x.1 @0> (size=4,offset=0): f32[]
`
	assignment, err := ParseBufferAssignment(strings.NewReader(report))
	require.NoError(t, err)
	assert.Equal(t, []int{32768, 128, 4, 4}, assignment.BufferSizes)
	assert.Equal(t, []int{0}, assignment.ParamIDs)
	assert.Equal(t, 1, assignment.OutputID)
	assert.Equal(t, []Role{RoleParameter, RoleOutput, RoleNone, RoleNone}, assignment.Roles)
	assert.NotContains(t, assignment.BufferShapes, 2)
	assert.NotContains(t, assignment.BufferShapes, 3)
}

func TestParseBufferAssignmentTupleOutput(t *testing.T) {
	report := `allocation 0: 0x1, size 4, parameter 0, shape |f32[]|:
allocation 1: 0x2, size 16, output shape is |(f32[2], u32[])|, maybe-live-out:
`
	assignment, err := ParseBufferAssignment(strings.NewReader(report))
	require.NoError(t, err)
	want := shapes.MakeTuple(shapes.Make(dtypes.F32, 2), shapes.Make(dtypes.U32))
	assert.Equal(t, want, assignment.BufferShapes[1])
}

func TestParseBufferAssignmentParamOrder(t *testing.T) {
	// Parameter ids follow allocation order, which is what positions them in
	// the buffer table.
	report := `allocation 0: 0x1, size 4, thread-local:
allocation 1: 0x2, size 8, parameter 1, shape |f64[]|:
allocation 2: 0x3, size 4, parameter 0, shape |f32[]|:
allocation 3: 0x4, size 4, output shape is |f32[]|, maybe-live-out:
`
	assignment, err := ParseBufferAssignment(strings.NewReader(report))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, assignment.ParamIDs)
}

func TestParseBufferAssignmentErrors(t *testing.T) {
	t.Run("multiple outputs", func(t *testing.T) {
		report := `allocation 0: 0x1, size 4, output shape is |f32[]|, maybe-live-out:
allocation 1: 0x2, size 4, output shape is |f32[]|, thread-local:
`
		_, err := ParseBufferAssignment(strings.NewReader(report))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMultipleOutputs), "got: %v", err)
	})

	t.Run("output not set", func(t *testing.T) {
		report := `allocation 0: 0x1, size 4, parameter 0, shape |f32[]|:
`
		_, err := ParseBufferAssignment(strings.NewReader(report))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutputNotSet), "got: %v", err)
	})

	t.Run("unordered allocations", func(t *testing.T) {
		report := `allocation 0: 0x1, size 4, output shape is |f32[]|, maybe-live-out:
allocation 2: 0x2, size 4, thread-local:
`
		_, err := ParseBufferAssignment(strings.NewReader(report))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnorderedAllocations), "got: %v", err)
	})

	t.Run("duplicate allocation id", func(t *testing.T) {
		report := `allocation 0: 0x1, size 4, output shape is |f32[]|, maybe-live-out:
allocation 0: 0x2, size 4, thread-local:
`
		_, err := ParseBufferAssignment(strings.NewReader(report))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnorderedAllocations), "got: %v", err)
	})

	t.Run("bad shape string", func(t *testing.T) {
		report := `allocation 0: 0x1, size 4, output shape is |z32[]|, maybe-live-out:
`
		_, err := ParseBufferAssignment(strings.NewReader(report))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "z32")
	})

	t.Run("empty report", func(t *testing.T) {
		_, err := ParseBufferAssignment(strings.NewReader(""))
		assert.True(t, errors.Is(err, ErrOutputNotSet), "got: %v", err)
	})
}
