//go:build noisedebug

package handle

import (
	"os"
	"sync"
	"unsafe"

	"github.com/danmuck/libnoise/internal/logging"
	"github.com/danmuck/libnoise/internal/noise"
	"github.com/danmuck/libnoise/internal/observability"
)

const Hardened = true

// exitViolation is the status used when a contract violation is caught.
const exitViolation = 70

var (
	mu   sync.Mutex
	live = make(map[uintptr]struct{})

	abort = func() { os.Exit(exitViolation) }
)

func track(s *noise.Seed) {
	mu.Lock()
	live[uintptr(unsafe.Pointer(s))] = struct{}{}
	n := len(live)
	mu.Unlock()
	observability.RecordHandleCreated()
	logging.Debugf("handle.New ok handle=%p seed=%d live=%d", s, s.Value(), n)
}

func release(s *noise.Seed) {
	key := uintptr(unsafe.Pointer(s))
	mu.Lock()
	_, ok := live[key]
	delete(live, key)
	n := len(live)
	mu.Unlock()
	if !ok {
		violation("Delete", s)
		return
	}
	observability.RecordHandleDestroyed()
	logging.Debugf("handle.Delete ok handle=%p live=%d", s, n)
}

func check(s *noise.Seed) {
	mu.Lock()
	_, ok := live[uintptr(unsafe.Pointer(s))]
	mu.Unlock()
	if !ok {
		violation("Borrow", s)
	}
}

func violation(op string, s *noise.Seed) {
	observability.RecordHandleViolation(op)
	logging.Errf("handle.%s invalid handle=%p reason=not_live", op, s)
	abort()
}

func Live() (int, bool) {
	mu.Lock()
	defer mu.Unlock()
	return len(live), true
}
