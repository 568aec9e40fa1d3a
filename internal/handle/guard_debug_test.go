//go:build noisedebug

package handle

import (
	"testing"
	"unsafe"

	"github.com/danmuck/libnoise/internal/testutil/testlog"
)

func expectViolation(t *testing.T, fn func()) {
	t.Helper()
	prev := abort
	abort = func() { panic("handle violation") }
	defer func() { abort = prev }()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected violation")
		}
	}()
	fn()
}

func TestGuardTracksLiveHandles(t *testing.T) {
	testlog.Start(t)
	if !Hardened {
		t.Fatalf("debug build must be hardened")
	}
	before, ok := Live()
	if !ok {
		t.Fatalf("registry should be compiled in")
	}
	s := New(3)
	if n, _ := Live(); n != before+1 {
		t.Fatalf("live count after New: %d want %d", n, before+1)
	}
	Delete(s)
	if n, _ := Live(); n != before {
		t.Fatalf("live count after Delete: %d want %d", n, before)
	}
}

func TestGuardCatchesDoubleDelete(t *testing.T) {
	testlog.Start(t)
	s := New(4)
	Delete(s)
	expectViolation(t, func() { Delete(s) })
}

func TestGuardCatchesForeignBorrow(t *testing.T) {
	testlog.Start(t)
	var local [8]byte
	expectViolation(t, func() { Borrow(unsafe.Pointer(&local)) })
}
