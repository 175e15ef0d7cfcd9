// Package pdfium provides safe Go access to PDFium, the PDF engine from
// the Chromium project, loaded as a native shared library at runtime.
//
// PDFium is written in C++ with manual memory management and no internal
// thread safety. This library isolates every hazard of that boundary into
// three small primitives, and builds the domain API on top of them:
//
//	pdfium/           Root package with the shared logger hook
//	├── errors/       Structured error types for the native boundary
//	├── ffi/          Dynamic loading and the bound native function table
//	├── handle/       Reference-counted native resource handles
//	├── gate/         Process-wide reentrant access gate to the library
//	├── bridge/       io.ReadSeeker / io.Writer adapters for the native
//	│                 block-read and block-write callback protocols
//	├── document/     Documents, pages and text extraction
//	└── cmd/pdfrun/   CLI and interactive inspector
//
// # Quick Start
//
// Open a document and count its pages:
//
//	doc, err := document.Open("report.pdf", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
//	fmt.Println(doc.PageCount(), "pages")
//
// The native library is located and initialized lazily on the first call
// that needs it. To load it from a specific directory, or to select the
// Skia renderer instead of the default AGG renderer, configure the gate
// before that first call:
//
//	gate.SetLibraryLocation("/opt/pdfium/lib")
//	gate.SetUseSkiaRenderer(true)
//
// # Ownership and concurrency
//
// Every native identifier is held in a handle.Handle, which guarantees the
// matching native release function runs exactly once, when the last clone
// of the handle is closed. All native calls are serialized through
// gate.Acquire, whose lock is reentrant on the owning goroutine: releasing
// a handle may reacquire the gate from inside an enclosing gated call
// without deadlocking. Documents and pages are not safe for concurrent use
// from multiple goroutines without external synchronization.
package pdfium
