package main

/*
// The symbol is provided at link time by the compiled reproducer object file
// (pass it through CGO_LDFLAGS when building).
void EntryModule(char* result_buffer, char* run_opts, char** params,
                 char** buffer_table, int* prof_counters);
*/
import "C"

import "unsafe"

// entryModule adapts the externally linked EntryModule symbol to the
// driver's entry type.
func entryModule(resultBuffer, runOpts, params, bufferTable, profCounters unsafe.Pointer) {
	C.EntryModule(
		(*C.char)(resultBuffer),
		(*C.char)(runOpts),
		(**C.char)(params),
		(**C.char)(bufferTable),
		(*C.int)(profCounters),
	)
}
