// Package handle owns the lifetime of seeds handed across the C boundary.
//
// A seed is allocated in C memory, initialised in place and returned as a
// stable address. The caller owns it until it is passed to Delete. The
// default build does no bookkeeping: deleting a handle twice, deleting a
// foreign pointer, or borrowing a deleted handle is undefined behaviour and
// is the caller's responsibility. Building with the noisedebug tag adds a
// registry of live handles that aborts the process on such misuse.
//
// Any number of goroutines or C threads may borrow one live handle at a
// time. Delete must happen after every borrow of that handle has returned.
package handle

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/danmuck/libnoise/internal/noise"
)

var seedSize = C.size_t(unsafe.Sizeof(noise.Seed{}))

// New allocates and initialises a seed and transfers ownership to the
// caller. It never returns nil: C.malloc crashes the process when memory is
// exhausted.
func New(value uint32) *noise.Seed {
	s := (*noise.Seed)(C.malloc(seedSize))
	s.Init(value)
	track(s)
	return s
}

// Delete frees a seed produced by New. s must not be used afterwards.
func Delete(s *noise.Seed) {
	release(s)
	C.free(unsafe.Pointer(s))
}

// Borrow views p as a live seed for the duration of one call. It does not
// take ownership.
func Borrow(p unsafe.Pointer) *noise.Seed {
	s := (*noise.Seed)(p)
	check(s)
	return s
}
