package hlorepro

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/hlotools/hlorepro/types/shapes"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillDeterminism(t *testing.T) {
	shape := shapes.Make(dtypes.F32, 8, 8)
	a := make([]byte, shape.Memory())
	b := make([]byte, shape.Memory())
	require.NoError(t, Fill(unsafe.Pointer(&a[0]), shape))
	require.NoError(t, Fill(unsafe.Pointer(&b[0]), shape))
	assert.True(t, bytes.Equal(a, b), "two fills of the same shape must be byte-identical")
}

func TestFillSignedBounds(t *testing.T) {
	data := make([]int32, 512)
	require.NoError(t, Fill(unsafe.Pointer(&data[0]), shapes.Make(dtypes.S32, 512)))
	for i, v := range data {
		assert.GreaterOrEqual(t, v, int32(-100), "element %d", i)
		assert.LessOrEqual(t, v, int32(100), "element %d", i)
	}
}

func TestFillUnsignedBounds(t *testing.T) {
	data := make([]uint8, 512)
	require.NoError(t, Fill(unsafe.Pointer(&data[0]), shapes.Make(dtypes.U8, 512)))
	for i, v := range data {
		assert.LessOrEqual(t, v, uint8(100), "element %d", i)
	}
}

func TestFillFloatBounds(t *testing.T) {
	data := make([]float64, 512)
	require.NoError(t, Fill(unsafe.Pointer(&data[0]), shapes.Make(dtypes.F64, 512)))
	for i, v := range data {
		assert.GreaterOrEqual(t, v, -100.0, "element %d", i)
		assert.LessOrEqual(t, v, 100.0, "element %d", i)
	}
}

func TestFillScalar(t *testing.T) {
	var v int16
	require.NoError(t, Fill(unsafe.Pointer(&v), shapes.Make(dtypes.S16)))
}

func TestFillUnsupported(t *testing.T) {
	for _, tag := range []string{"f16", "bf16", "c64", "c128"} {
		dtype := must.M1(shapes.DTypeFromTag(tag))
		var buf [64]byte
		err := Fill(unsafe.Pointer(&buf[0]), shapes.Make(dtype, 2))
		require.Error(t, err, "fill of %s must fail", tag)
		assert.True(t, errors.Is(err, ErrUnsupportedType), "got: %v", err)
		assert.Contains(t, err.Error(), tag)
	}
}
