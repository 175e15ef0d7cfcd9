package gate

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// reentrantLock is a mutual-exclusion lock that the owning goroutine may
// acquire multiple times without self-deadlock. Other goroutines block
// until the owner's acquisition depth returns to zero.
//
// Go offers no reentrant primitive because goroutine identity is meant to
// be invisible, but the native callback protocol forces one here: PDFium
// re-enters our code synchronously on the same goroutine that is already
// inside a gated call. Ownership is tracked by goroutine ID.
type reentrantLock struct {
	mu    sync.Mutex
	cond  *sync.Cond
	owner uint64 // goroutine ID, 0 when free
	depth int
}

func (l *reentrantLock) Lock() {
	gid := goroutineID()

	l.mu.Lock()
	if l.cond == nil {
		l.cond = sync.NewCond(&l.mu)
	}
	for l.depth > 0 && l.owner != gid {
		l.cond.Wait()
	}
	l.owner = gid
	l.depth++
	l.mu.Unlock()
}

func (l *reentrantLock) Unlock() {
	l.mu.Lock()
	if l.depth == 0 {
		l.mu.Unlock()
		panic("gate: unlock of unlocked reentrantLock")
	}
	l.depth--
	if l.depth == 0 {
		l.owner = 0
		if l.cond != nil {
			l.cond.Signal()
		}
	}
	l.mu.Unlock()
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID parses the current goroutine's ID from its stack header
// ("goroutine 18 [running]:"). runtime.Stack with all=false is cheap
// enough for a lock taken around dynamic library calls.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		if id, err := strconv.ParseUint(string(b[:i]), 10, 64); err == nil {
			return id
		}
	}
	// Unreachable with the documented stack format; a stable non-zero
	// fallback keeps the lock functional (if overly conservative).
	return 1
}
