package hlorepro

import "github.com/pkg/errors"

// Every failure in the pipeline is fatal: nothing is retried and no partial
// output is produced. The sentinels below classify the failures so callers
// and tests can match them with errors.Is; context is attached at the site
// with errors.Wrapf.
var (
	// ErrOutputNotSet reports a buffer assignment with no output allocation.
	ErrOutputNotSet = errors.New("output not set")

	// ErrMultipleOutputs reports a buffer assignment declaring more than one
	// output allocation.
	ErrMultipleOutputs = errors.New("multiple output-parameters")

	// ErrUnorderedAllocations reports allocation ids that are not contiguous
	// and strictly increasing from zero.
	ErrUnorderedAllocations = errors.New("unordered allocations in input")

	// ErrUnsupportedType reports an element kind that can be declared in a
	// shape but not filled or displayed (f16, bf16 and the complex kinds).
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrShapeMismatch reports a parameter whose declared shape does not
	// account for its declared allocation size.
	ErrShapeMismatch = errors.New("unexpected number of elements")
)
