// Package document is the domain layer over the native library: documents,
// pages, and text extraction, expressed through owned handles and stream
// bridges so callers never touch a raw identifier or the gate directly.
//
// Every constructor acquires the library gate, so the first call in a
// process triggers the one-time load. Opening from a stream wires the
// source through a read bridge that stays alive until the document's
// native handle is released; saving wires the sink through a write bridge
// that is flushed and drained before the call returns.
package document
