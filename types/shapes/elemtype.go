package shapes

import (
	"strconv"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// dtypeTag maps the element kinds that may appear in a buffer-assignment
// report to their lowercase report tags. The set is closed: the report format
// is defined over exactly these kinds, and any other tag is rejected by the
// parser.
var dtypeTag = map[dtypes.DType]string{
	dtypes.S16:        "s16",
	dtypes.S32:        "s32",
	dtypes.S64:        "s64",
	dtypes.U8:         "u8",
	dtypes.U16:        "u16",
	dtypes.U32:        "u32",
	dtypes.U64:        "u64",
	dtypes.F16:        "f16",
	dtypes.BFloat16:   "bf16",
	dtypes.F32:        "f32",
	dtypes.F64:        "f64",
	dtypes.Complex64:  "c64",
	dtypes.Complex128: "c128",
}

var tagDType = func() map[string]dtypes.DType {
	m := make(map[string]dtypes.DType, len(dtypeTag))
	for dtype, tag := range dtypeTag {
		m[tag] = dtype
	}
	return m
}()

// DTypeFromTag resolves a lowercase report tag like "f32" to its element
// kind. Tags outside the report format (including "s8" and "pred") return an
// error.
func DTypeFromTag(tag string) (dtypes.DType, error) {
	dtype, ok := tagDType[tag]
	if !ok {
		return dtypes.InvalidDType, errors.Errorf("unknown element type %q", tag)
	}
	return dtype, nil
}

// TagFromDType returns the report tag of an element kind, or the kind's own
// name if it is not part of the report format.
func TagFromDType(dtype dtypes.DType) string {
	if tag, ok := dtypeTag[dtype]; ok {
		return tag
	}
	return dtype.String()
}

// DTypeSize returns the byte width of an element kind. Widths follow from
// the tag's numeric suffix: "bf16" is 16 bits wide, "c128" is 128.
func DTypeSize(dtype dtypes.DType) int {
	tag, ok := dtypeTag[dtype]
	if !ok {
		return 0
	}
	bits, err := strconv.Atoi(strings.TrimLeft(tag, "subfc"))
	if err != nil {
		return 0
	}
	return bits / 8
}
