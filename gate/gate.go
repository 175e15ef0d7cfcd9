package gate

import (
	"sync"

	"go.uber.org/zap"

	pdfium "github.com/wippyai/pdfium-runtime"
	"github.com/wippyai/pdfium-runtime/ffi"
)

// Gate serializes access to one loaded instance of the PDFium library.
//
// The zero-config process singleton is reached through the package-level
// Acquire / MustAcquire; an explicit Gate with an injected loader exists
// so tests and unusual embedders can run against their own instance.
type Gate struct {
	load func() (*ffi.Bindings, error)

	once     sync.Once
	bindings *ffi.Bindings
	err      error

	lock reentrantLock
}

// New creates a gate around a loader. The loader runs at most once, on the
// first acquisition; its outcome is final for the life of the gate.
func New(load func() (*ffi.Bindings, error)) *Gate {
	return &Gate{load: load}
}

// Guard grants access to the bound function table while holding one level
// of the gate's reentrant lock. Release it exactly once, normally with
// defer. A Guard must stay on the goroutine that acquired it.
type Guard struct {
	gate     *Gate
	released bool
}

// Lib returns the bound native function table.
func (g *Guard) Lib() *ffi.Bindings {
	return g.gate.bindings
}

// Release unlocks one reentrancy level. Safe to call twice on the same
// guard; the second call is a no-op.
func (g *Guard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.gate.lock.Unlock()
}

// Acquire returns a guard on the loaded library, loading and initializing
// it on the first call. If the load failed, that same error is returned on
// this and every future call; there is no retry.
//
// The lock is reentrant: a goroutine already holding a guard may acquire
// nested guards without blocking. Other goroutines block until every
// nested guard is released. Acquisition has no timeout.
func (g *Gate) Acquire() (*Guard, error) {
	g.once.Do(g.initialize)

	if g.err != nil {
		return nil, g.err
	}

	g.lock.Lock()
	return &Guard{gate: g}, nil
}

// MustAcquire is Acquire for call sites holding a static guarantee that
// the library already loaded, such as the finalizer of a handle that could
// only have been created by the library. It panics on a load failure other
// code has already proven impossible.
func (g *Gate) MustAcquire() *Guard {
	guard, err := g.Acquire()
	if err != nil {
		panic("gate: library unavailable after prior successful load: " + err.Error())
	}
	return guard
}

func (g *Gate) initialize() {
	g.bindings, g.err = g.load()
	if g.err != nil {
		pdfium.Logger().Warn("pdfium library load failed; failure is permanent for this process",
			zap.Error(g.err))
		return
	}
	pdfium.Logger().Debug("pdfium library loaded and initialized")
}

// loadDefault reads the process-wide configuration and performs the real
// library load: configured directory first, then the platform default
// search, then one-time native initialization with the chosen renderer.
func loadDefault() (*ffi.Bindings, error) {
	dir, skia := snapshotConfig()

	bindings, err := ffi.LoadFromDirectory(dir)
	if err != nil {
		bindings, err = ffi.Load(ffi.LibraryFilename())
	}
	if err != nil {
		return nil, err
	}

	bindings.Init(skia)
	pdfium.Logger().Debug("pdfium initialized",
		zap.String("directory", dir),
		zap.Bool("skia", skia))
	return bindings, nil
}

var defaultGate = New(loadDefault)

// Acquire acquires the process-wide gate. See Gate.Acquire.
func Acquire() (*Guard, error) {
	return defaultGate.Acquire()
}

// MustAcquire acquires the process-wide gate. See Gate.MustAcquire.
func MustAcquire() *Guard {
	return defaultGate.MustAcquire()
}

// Available reports whether the library can be (or already has been)
// loaded, triggering the load on first use. Convenience for callers that
// want to probe without keeping a guard.
func Available() bool {
	guard, err := Acquire()
	if err != nil {
		return false
	}
	guard.Release()
	return true
}
