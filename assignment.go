package hlorepro

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/hlotools/hlorepro/types/shapes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// BufferAssignment is the parsed form of a compiler buffer-assignment report.
//
// Allocation ids are 0-based and contiguous; the report must declare them in
// increasing order. Exactly one allocation is the output.
type BufferAssignment struct {
	// BufferSizes maps allocation ids to their byte sizes.
	BufferSizes []int

	// BufferShapes holds the declared shapes of the allocations that are
	// parameters or the output. Other allocations have no entry.
	BufferShapes map[int]shapes.Tuple

	// ParamIDs lists the allocation ids of the input parameters, in
	// declaration order, which is the positional order the entry point
	// expects them in the buffer table.
	ParamIDs []int

	// Roles classifies every allocation, index-aligned with BufferSizes.
	Roles []Role

	// OutputID is the allocation id of the output buffer.
	OutputID int
}

// The report format has no grammar; these three patterns, scraped per line,
// are the contract with the report producer. Example of input:
//
//	allocation 0: 0x27017c46b600, size 32768, parameter 0, shape |f32[256,32]|:
//	 value: <3 parameter @0> (size=32768,offset=0): f32[256,32]{1,0}
//	allocation 1: 0x27017c46b6b0, size 128, output shape is |f32[32]|, maybe-live-out:
//	 value: <5 reduce @0> (size=128,offset=0): f32[32]{0}
//	allocation 2: 0x27017c46b760, size 4, constant:
//	 value: <4 init_value @0> (size=4,offset=0): f32[]
var (
	allocationRe = regexp.MustCompile(`allocation ([0-9]+): .+, size ([0-9]+), (.+)`)
	outputRe     = regexp.MustCompile(`output shape is \|([^|]+)\|,`)
	parameterRe  = regexp.MustCompile(`parameter ([0-9]+), shape \|([^|]+)\|`)
)

// ParseBufferAssignment scrapes a buffer-assignment report line by line.
// Lines that do not look like allocation descriptions are skipped; allocation
// lines whose descriptor declares neither a parameter nor the output (e.g.
// constants and thread-locals) contribute a size entry but no shape.
func ParseBufferAssignment(r io.Reader) (*BufferAssignment, error) {
	assignment := &BufferAssignment{
		BufferShapes: make(map[int]shapes.Tuple),
		OutputID:     -1,
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		m := allocationRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		klog.V(1).Infof("matched allocation description: %s", line)
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, errors.Wrapf(err, "allocation id in %q", line)
		}
		size, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, errors.Wrapf(err, "size of allocation %d", id)
		}
		if id != len(assignment.BufferSizes) {
			return nil, errors.Wrapf(ErrUnorderedAllocations,
				"allocation %d where %d was expected", id, len(assignment.BufferSizes))
		}
		assignment.BufferSizes = append(assignment.BufferSizes, size)
		assignment.Roles = append(assignment.Roles, RoleNone)
		descriptor := m[3]

		if om := outputRe.FindStringSubmatch(descriptor); om != nil {
			if assignment.OutputID != -1 {
				return nil, errors.Wrapf(ErrMultipleOutputs,
					"allocations %d and %d both declare the output", assignment.OutputID, id)
			}
			tuple, err := shapes.TupleFromString(om[1])
			if err != nil {
				return nil, errors.Wrapf(err, "output shape of allocation %d", id)
			}
			assignment.OutputID = id
			assignment.BufferShapes[id] = tuple
			assignment.Roles[id] = RoleOutput
			klog.V(1).Infof("allocation %d is the output, shape %s", id, tuple)
		}

		if pm := parameterRe.FindStringSubmatch(descriptor); pm != nil {
			tuple, err := shapes.TupleFromString(pm[2])
			if err != nil {
				return nil, errors.Wrapf(err, "shape of parameter %s (allocation %d)", pm[1], id)
			}
			assignment.ParamIDs = append(assignment.ParamIDs, id)
			assignment.BufferShapes[id] = tuple
			if assignment.Roles[id] == RoleNone {
				assignment.Roles[id] = RoleParameter
			}
			klog.V(1).Infof("allocation %d is parameter %s, shape %s", id, pm[1], tuple)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading buffer-assignment report")
	}
	if assignment.OutputID == -1 {
		return nil, ErrOutputNotSet
	}
	return assignment, nil
}

// ParseBufferAssignmentFile is ParseBufferAssignment over the report at path.
func ParseBufferAssignmentFile(path string) (*BufferAssignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening buffer-assignment report %q", path)
	}
	defer f.Close()
	return ParseBufferAssignment(f)
}
