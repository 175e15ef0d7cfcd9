package bridge

import "sync"

// The token table stores live bridges keyed by an incrementing token,
// allowing safe passage of Go state through a C void* without handing
// native code a Go pointer. Tokens start at 1; zero is never issued, so a
// garbage Param value is overwhelmingly likely to miss.
var (
	tokenMu   sync.RWMutex
	tokenSeq  uintptr
	liveByTok = map[uintptr]any{}
)

func register(v any) uintptr {
	tokenMu.Lock()
	defer tokenMu.Unlock()
	tokenSeq++
	tok := tokenSeq
	liveByTok[tok] = v
	return tok
}

func lookup(tok uintptr) (any, bool) {
	tokenMu.RLock()
	defer tokenMu.RUnlock()
	v, ok := liveByTok[tok]
	return v, ok
}

func unregister(tok uintptr) {
	tokenMu.Lock()
	defer tokenMu.Unlock()
	delete(liveByTok, tok)
}
