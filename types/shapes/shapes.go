// Package shapes models the array and tuple shapes that annotate allocations
// in a buffer-assignment report.
//
// An array shape is an element kind plus its dimensions, rendered in report
// notation as "f32[256,32]"; an empty dimension list is a scalar, "f32[]".
// A tuple shape groups one or more array shapes: a single-element tuple
// renders as the bare array shape, larger tuples as "(f32[10,20], u32[])".
// Nested tuples are not representable and fail parsing.
package shapes

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// Array is the shape of one numeric array: an element kind and the dimension
// of each axis. A scalar has no dimensions.
type Array struct {
	DType      dtypes.DType
	Dimensions []int
}

// Make returns an Array with the given element kind and dimensions.
func Make(dtype dtypes.DType, dimensions ...int) Array {
	return Array{DType: dtype, Dimensions: dimensions}
}

// Rank is the number of axes. Scalars have rank 0.
func (a Array) Rank() int { return len(a.Dimensions) }

// Size returns the number of elements: the product of the dimensions, or 1
// for a scalar.
func (a Array) Size() int {
	size := 1
	for _, dim := range a.Dimensions {
		size *= dim
	}
	return size
}

// Memory returns the number of bytes the array's data occupies.
func (a Array) Memory() int {
	return a.Size() * DTypeSize(a.DType)
}

// String renders the shape in report notation, e.g. "f32[256,32]".
func (a Array) String() string {
	dims := make([]string, len(a.Dimensions))
	for i, dim := range a.Dimensions {
		dims[i] = strconv.Itoa(dim)
	}
	return TagFromDType(a.DType) + "[" + strings.Join(dims, ",") + "]"
}

var arrayRe = regexp.MustCompile(`^([^\[]+)\[(.*)\]$`)

// ArrayFromString parses report notation like "f32[256,32]" or "u32[]".
func ArrayFromString(s string) (Array, error) {
	if strings.ContainsRune(s, '(') {
		return Array{}, errors.Errorf("nested tuple shapes are not supported: %q", s)
	}
	m := arrayRe.FindStringSubmatch(s)
	if m == nil {
		return Array{}, errors.Errorf("malformed array shape %q", s)
	}
	dtype, err := DTypeFromTag(m[1])
	if err != nil {
		return Array{}, errors.Wrapf(err, "array shape %q", s)
	}
	shape := Array{DType: dtype}
	if m[2] == "" {
		return shape, nil
	}
	for _, token := range strings.Split(m[2], ",") {
		dim, err := strconv.Atoi(token)
		if err != nil || dim < 0 {
			return Array{}, errors.Errorf("malformed dimension %q in array shape %q", token, s)
		}
		shape.Dimensions = append(shape.Dimensions, dim)
	}
	return shape, nil
}

// Tuple is an ordered group of one or more array shapes. Only outputs can
// structurally be tuples; parameters are always single-element.
type Tuple struct {
	Elements []Array
}

// MakeTuple returns a Tuple over the given array shapes.
func MakeTuple(elements ...Array) Tuple {
	return Tuple{Elements: elements}
}

// String renders a single-element tuple as the bare array shape, larger
// tuples parenthesized, e.g. "(f32[10,20], u32[])".
func (t Tuple) String() string {
	if len(t.Elements) == 1 {
		return t.Elements[0].String()
	}
	parts := make([]string, len(t.Elements))
	for i, elem := range t.Elements {
		parts[i] = elem.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// TupleFromString parses either a bare array shape (a one-element tuple) or
// a parenthesized ", "-separated list like "(f32[10,20], u32[])".
func TupleFromString(s string) (Tuple, error) {
	if !strings.HasPrefix(s, "(") {
		elem, err := ArrayFromString(s)
		if err != nil {
			return Tuple{}, err
		}
		return Tuple{Elements: []Array{elem}}, nil
	}
	if !strings.HasSuffix(s, ")") {
		return Tuple{}, errors.Errorf("malformed tuple shape %q", s)
	}
	var elements []Array
	for _, sub := range strings.Split(s[1:len(s)-1], ", ") {
		elem, err := ArrayFromString(sub)
		if err != nil {
			return Tuple{}, errors.Wrapf(err, "tuple shape %q", s)
		}
		elements = append(elements, elem)
	}
	return Tuple{Elements: elements}, nil
}
