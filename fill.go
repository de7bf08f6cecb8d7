package hlorepro

import (
	"math/rand"
	"unsafe"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/hlotools/hlorepro/types/shapes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Every Fill call reseeds with fillSeed, so every buffer and every run gets
// the same values. Reproducibility is the whole point of the tool.
const (
	fillSeed   = 42
	lowerBound = -100
	upperBound = 100
)

type integral interface {
	~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type floating interface {
	~float32 | ~float64
}

func fillIntegral[T integral](ptr unsafe.Pointer, n int, lo, hi int64) {
	rng := rand.New(rand.NewSource(fillSeed))
	data := unsafe.Slice((*T)(ptr), n)
	span := hi - lo + 1
	for i := range data {
		data[i] = T(lo + rng.Int63n(span))
	}
}

func fillFloating[T floating](ptr unsafe.Pointer, n int) {
	rng := rand.New(rand.NewSource(fillSeed))
	data := unsafe.Slice((*T)(ptr), n)
	for i := range data {
		data[i] = T(lowerBound + rng.Float64()*(upperBound-lowerBound))
	}
}

// Fill populates the buffer at ptr with deterministic pseudo-random values
// for the given array shape: signed kinds uniform in [-100, 100], unsigned in
// [0, 100], floating kinds uniform real in [-100, 100]. The f16, bf16 and
// complex kinds cannot be generated and fail with ErrUnsupportedType.
func Fill(ptr unsafe.Pointer, shape shapes.Array) error {
	n := shape.Size()
	klog.V(1).Infof("filling %s (%d elements)", shape, n)
	switch shape.DType {
	case dtypes.S16:
		fillIntegral[int16](ptr, n, lowerBound, upperBound)
	case dtypes.S32:
		fillIntegral[int32](ptr, n, lowerBound, upperBound)
	case dtypes.S64:
		fillIntegral[int64](ptr, n, lowerBound, upperBound)
	case dtypes.U8:
		fillIntegral[uint8](ptr, n, 0, upperBound)
	case dtypes.U16:
		fillIntegral[uint16](ptr, n, 0, upperBound)
	case dtypes.U32:
		fillIntegral[uint32](ptr, n, 0, upperBound)
	case dtypes.U64:
		fillIntegral[uint64](ptr, n, 0, upperBound)
	case dtypes.F32:
		fillFloating[float32](ptr, n)
	case dtypes.F64:
		fillFloating[float64](ptr, n)
	default:
		return errors.Wrapf(ErrUnsupportedType, "cannot fill %s buffers", shapes.TagFromDType(shape.DType))
	}
	return nil
}
