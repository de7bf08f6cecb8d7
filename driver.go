package hlorepro

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/hlotools/hlorepro/internal/buffers"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// EntryFunc is the fixed ABI of the compiled kernel's entry symbol:
// (result_buffer, run_opts, params, buffer_table, prof_counters). The driver
// always passes nil for everything except buffer_table, which receives the
// live char** of the allocated buffers. The signature and the nil-argument
// convention must not change: they are what externally compiled artifacts
// were linked against.
type EntryFunc func(resultBuffer, runOpts, params, bufferTable, profCounters unsafe.Pointer)

// Driver replays a compiled kernel against the buffers described by a
// buffer-assignment report.
type Driver struct {
	// Entry is invoked once, synchronously, with the buffer table.
	Entry EntryFunc

	// Out receives the rendered output buffer and, when Verbose, the echo of
	// the filled parameter buffers. Defaults to os.Stdout.
	Out io.Writer

	// Verbose echoes the filled input values to Out. It never changes
	// control flow or the rendered output.
	Verbose bool
}

func (d *Driver) out() io.Writer {
	if d.Out == nil {
		return os.Stdout
	}
	return d.Out
}

// Run executes the whole pipeline against a report read from r: parse,
// allocate, fill the parameters, invoke the entry point and display the
// output buffer. Any failure aborts the run; the buffer table is released on
// every path.
func (d *Driver) Run(r io.Reader) error {
	assignment, err := ParseBufferAssignment(r)
	if err != nil {
		return err
	}
	return d.run(assignment)
}

// RunFile is Run over the report at path.
func (d *Driver) RunFile(path string) error {
	assignment, err := ParseBufferAssignmentFile(path)
	if err != nil {
		return err
	}
	return d.run(assignment)
}

func (d *Driver) run(assignment *BufferAssignment) error {
	if d.Entry == nil {
		return errors.New("no entry point bound")
	}
	table := buffers.NewTable(assignment.BufferSizes)
	defer table.Free()

	for _, id := range assignment.ParamIDs {
		tuple := assignment.BufferShapes[id]
		if len(tuple.Elements) != 1 {
			return errors.Errorf("parameters can not be tuples, got %s for allocation %d", tuple, id)
		}
		shape := tuple.Elements[0]
		if shape.Memory() != assignment.BufferSizes[id] {
			return errors.Wrapf(ErrShapeMismatch,
				"allocation %d declares %d bytes but shape %s occupies %d",
				id, assignment.BufferSizes[id], shape, shape.Memory())
		}
		if err := Fill(table.At(id), shape); err != nil {
			return err
		}
		if d.Verbose {
			if _, err := fmt.Fprintf(d.out(), "Filled parameter buffer for param %d:\n", id); err != nil {
				return err
			}
			if err := Display(d.out(), table.At(id), shape); err != nil {
				return err
			}
		}
	}

	klog.V(1).Info("launching module")
	d.Entry(nil, nil, nil, table.Ptr(), nil)

	output := assignment.BufferShapes[assignment.OutputID]
	klog.V(1).Infof("output shape: %s", output)
	if _, err := fmt.Fprintln(d.out(), "Output:"); err != nil {
		return err
	}
	return DisplayTuple(d.out(), table.At(assignment.OutputID), output)
}
