// Package hlorepro replays a compiled numerical kernel (an HLO reproducer in
// object form) against deterministically filled buffers, so that a miscompile
// can be reproduced outside of the full compiler and runtime.
//
// The package consumes two compiler artifacts: a textual buffer-assignment
// report describing every allocation's byte size and role, and an object file
// exporting the fixed-signature EntryModule symbol. The pipeline is linear:
// parse the report, allocate one buffer per allocation id, fill the parameter
// buffers with seeded pseudo-random data, invoke the entry point with the
// buffer table, and render the output buffer as text. The fixed seed makes
// two runs over the same report byte-identical, which is what makes outputs
// from different optimization levels comparable.
package hlorepro
