// Package bridge adapts host byte sources and sinks to PDFium's callback
// I/O protocols.
//
// PDFium pulls document bytes through a block-read callback
// (FPDF_FILEACCESS) and pushes saved bytes through a block-write callback
// (FPDF_FILEWRITE). Both callbacks receive only a C context value, so Go
// state cannot ride along as a pointer: the bridges register themselves in
// a process-wide token table and smuggle the token through the descriptor,
// the same way cgo code passes Go values through void*.
//
// A Reader must live as long as the document it opened; PDFium reads
// through the descriptor lazily for the document's whole life. A Writer
// lives for a single save call, after which Flush makes the bytes durable
// and Take hands the sink back to the caller.
//
// The native protocol reduces every host-side failure to a zero return.
// The Writer keeps the original error in a side channel (Err) so a failed
// save can still be diagnosed.
package bridge
