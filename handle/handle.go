package handle

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	pdfium "github.com/wippyai/pdfium-runtime"
	pdferrors "github.com/wippyai/pdfium-runtime/errors"
)

// Finalizer releases the native resource behind a raw identifier.
// It is invoked at most once per shared identifier, with the gate
// reacquired by the caller as needed (the gate lock is reentrant, so a
// finalizer running inside an enclosing gated call does not deadlock).
type Finalizer[T ~uintptr] func(T)

// shared is the state owned jointly by a handle and all of its clones.
type shared[T ~uintptr] struct {
	raw  T
	fin  Finalizer[T]
	refs atomic.Int32
}

// Handle is one share of a native resource identifier. Clones are cheap
// and carry no native calls; the finalizer runs exactly once, when the
// last share is closed.
type Handle[T ~uintptr] struct {
	s      *shared[T]
	closed atomic.Bool
}

// New wraps a native identifier together with its release function.
// A zero identifier is never valid and fails with the null-handle
// condition; after construction the handle cannot fail.
func New[T ~uintptr](raw T, fin Finalizer[T]) (*Handle[T], error) {
	if raw == 0 {
		return nil, pdferrors.NullHandle(pdferrors.PhaseHandle, "")
	}
	s := &shared[T]{raw: raw, fin: fin}
	s.refs.Store(1)
	debugLifecycle("new", raw, fin != nil)
	return &Handle[T]{s: s}, nil
}

// NewView wraps an identifier whose lifetime is owned by another resource;
// closing the view never triggers native cleanup.
func NewView[T ~uintptr](raw T) (*Handle[T], error) {
	return New(raw, nil)
}

// Clone adds a share. O(1), no native calls, never fails.
// Must be called on a live (unclosed) handle.
func (h *Handle[T]) Clone() *Handle[T] {
	h.s.refs.Add(1)
	return &Handle[T]{s: h.s}
}

// Raw returns the native identifier for FFI use. The value must not be
// used past the Close of this handle and all of its clones.
func (h *Handle[T]) Raw() T {
	return h.s.raw
}

// Close releases this share. When the last share goes, the finalizer (if
// any) runs with the raw identifier. Closing the same share again is a
// no-op.
func (h *Handle[T]) Close() {
	if h.closed.Swap(true) {
		return
	}
	if h.s.refs.Add(-1) != 0 {
		return
	}
	if h.s.fin != nil {
		h.s.fin(h.s.raw)
		debugLifecycle("finalize", h.s.raw, true)
	} else {
		debugLifecycle("drop", h.s.raw, false)
	}
}

func debugLifecycle[T ~uintptr](event string, raw T, owned bool) {
	pdfium.Logger().Debug("handle "+event,
		zap.String("type", fmt.Sprintf("%T", raw)),
		zap.Uintptr("raw", uintptr(raw)),
		zap.Bool("owned", owned))
}
