package main

/*
#include "seed_abi.h"
*/
import "C"

import (
	"unsafe"

	"github.com/danmuck/libnoise/internal/handle"
	"github.com/danmuck/libnoise/internal/noise"
)

// noise_seed_new returns a new seed owned by the caller. Free it with
// noise_seed_delete.
//
//export noise_seed_new
func noise_seed_new(seed C.uint32_t) *C.Seed {
	return (*C.Seed)(unsafe.Pointer(handle.New(uint32(seed))))
}

// noise_seed_delete frees seed. seed must come from noise_seed_new and must
// not be used again.
//
//export noise_seed_delete
func noise_seed_delete(seed *C.Seed) {
	handle.Delete((*noise.Seed)(unsafe.Pointer(seed)))
}

func borrow(seed *C.Seed) *noise.Seed {
	return handle.Borrow(unsafe.Pointer(seed))
}
