package hlorepro

import (
	"fmt"
	"io"
	"strings"
	"unsafe"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/hlotools/hlorepro/types/shapes"
	"github.com/pkg/errors"
)

func renderElems[T any](ptr unsafe.Pointer, n int) string {
	data := unsafe.Slice((*T)(ptr), n)
	var sb strings.Builder
	for i, v := range data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	return sb.String()
}

func renderArray(ptr unsafe.Pointer, shape shapes.Array) (string, error) {
	n := shape.Size()
	switch shape.DType {
	case dtypes.S16:
		return renderElems[int16](ptr, n), nil
	case dtypes.S32:
		return renderElems[int32](ptr, n), nil
	case dtypes.S64:
		return renderElems[int64](ptr, n), nil
	case dtypes.U8:
		return renderElems[uint8](ptr, n), nil
	case dtypes.U16:
		return renderElems[uint16](ptr, n), nil
	case dtypes.U32:
		return renderElems[uint32](ptr, n), nil
	case dtypes.U64:
		return renderElems[uint64](ptr, n), nil
	case dtypes.F32:
		return renderElems[float32](ptr, n), nil
	case dtypes.F64:
		return renderElems[float64](ptr, n), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedType, "cannot display %s buffers", shapes.TagFromDType(shape.DType))
	}
}

// Display writes the buffer at ptr as text for the given array shape:
// elements in their natural form, ", "-separated, newline-terminated. The
// f16, bf16 and complex kinds fail with ErrUnsupportedType.
func Display(w io.Writer, ptr unsafe.Pointer, shape shapes.Array) error {
	s, err := renderArray(ptr, shape)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// DisplayTuple renders a tuple-shaped buffer. A single-element tuple is
// displayed as its sole array. For N > 1 elements the buffer holds N
// sub-pointers, one per element; each is rendered in turn, joined by ", "
// and wrapped in parentheses, mirroring the tuple shape notation.
func DisplayTuple(w io.Writer, ptr unsafe.Pointer, shape shapes.Tuple) error {
	if len(shape.Elements) == 1 {
		return Display(w, ptr, shape.Elements[0])
	}
	subPtrs := unsafe.Slice((*unsafe.Pointer)(ptr), len(shape.Elements))
	parts := make([]string, len(shape.Elements))
	for i, elem := range shape.Elements {
		s, err := renderArray(subPtrs[i], elem)
		if err != nil {
			return err
		}
		parts[i] = s
	}
	_, err := fmt.Fprintf(w, "(%s)\n", strings.Join(parts, ", "))
	return err
}
