// Package handle provides reference-counted ownership of native PDFium
// resource identifiers.
//
// Every identifier PDFium returns is wrapped in a Handle at the call
// boundary, paired with the native release function for its resource type.
// Clones share ownership; the release function runs exactly once, when the
// last clone is closed. View handles carry no release function and are used
// for identifiers whose lifetime belongs to some other resource.
//
// Go's garbage collector cannot provide deterministic destruction, so
// cleanup is an explicit, idempotent Close on each clone. A Handle is not
// synchronized beyond its share count and assumes single-goroutine use
// unless the caller adds synchronization.
package handle
