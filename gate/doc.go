// Package gate controls all access to the loaded PDFium library.
//
// PDFium has no internal thread safety, so every native call in the
// process must hold the gate. The gate loads the shared library lazily on
// first acquisition, initializes it once with the configured renderer, and
// memoizes the outcome: a failed load is permanent and every later
// acquisition returns the same error.
//
// The lock behind the gate is reentrant for the owning goroutine. That is
// a hard requirement, not a convenience: closing a resource handle calls
// back into the gate to release the native resource, and that close often
// happens while an enclosing gated call on the same goroutine still holds
// a guard.
//
// Configuration (library directory, renderer backend) is consulted exactly
// once, during the first acquisition; setters called after that point have
// no effect.
package gate
