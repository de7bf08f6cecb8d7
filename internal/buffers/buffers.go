// Package buffers owns the heap buffer table handed to the compiled entry
// point. The entry ABI takes a flat char** array with one pointer per
// allocation id, so both the buffers and the pointer array itself live on the
// C heap: malloc guarantees max_align_t alignment, and none of the memory is
// visible to the Go garbage collector while the kernel runs.
package buffers

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// Table exclusively owns one C allocation per buffer size plus the pointer
// array the entry point indexes. Free it when done; the driver defers Free
// so the memory is released on error paths too.
type Table struct {
	// ptrs is a Go view over the C pointer array.
	ptrs  []unsafe.Pointer
	array unsafe.Pointer
}

// NewTable allocates one block per entry of sizes, each sized exactly to its
// entry. Zero-size entries still get a valid unique pointer (cgo's C.malloc
// guarantees this) and are freed like any other.
func NewTable(sizes []int) *Table {
	t := &Table{}
	n := len(sizes)
	if n == 0 {
		return t
	}
	t.array = C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(unsafe.Pointer(nil))))
	t.ptrs = unsafe.Slice((*unsafe.Pointer)(t.array), n)
	for i, size := range sizes {
		t.ptrs[i] = C.malloc(C.size_t(size))
	}
	return t
}

// Ptr returns the char** the entry point expects, index-aligned with the
// sizes the table was built from. Nil for an empty table.
func (t *Table) Ptr() unsafe.Pointer {
	return t.array
}

// At returns the buffer for allocation id i.
func (t *Table) At(i int) unsafe.Pointer {
	return t.ptrs[i]
}

// Len returns the number of buffers.
func (t *Table) Len() int {
	return len(t.ptrs)
}

// Free releases every buffer and the pointer array. Calling it again is a
// no-op; a Table is never left partially freed.
func (t *Table) Free() {
	if t.array == nil {
		return
	}
	for _, p := range t.ptrs {
		C.free(p)
	}
	C.free(t.array)
	t.array = nil
	t.ptrs = nil
}
