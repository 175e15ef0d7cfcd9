package gate

import "sync"

var (
	configMu        sync.Mutex
	libraryLocation = "."
	useSkiaRenderer bool
)

// SetLibraryLocation sets the directory searched first for the PDFium
// shared library. The default is the current working directory; if loading
// from the configured directory fails, the platform's default library
// search is tried as a fallback.
//
// Effective only before the first acquisition of the default gate.
func SetLibraryLocation(dir string) {
	configMu.Lock()
	defer configMu.Unlock()
	libraryLocation = dir
}

// SetUseSkiaRenderer selects the Skia renderer backend for library
// initialization. The default is AGG (Aggregated Graphics).
//
// Effective only before the first acquisition of the default gate.
func SetUseSkiaRenderer(use bool) {
	configMu.Lock()
	defer configMu.Unlock()
	useSkiaRenderer = use
}

func snapshotConfig() (dir string, skia bool) {
	configMu.Lock()
	defer configMu.Unlock()
	return libraryLocation, useSkiaRenderer
}
