// Package ffi binds the PDFium native shared library at runtime.
//
// The library is located per platform (libpdfium.so, libpdfium.dylib,
// pdfium.dll), opened with dlopen / LoadLibrary, and its entry points are
// bound into a Bindings function table. No cgo is involved; binding happens
// through github.com/ebitengine/purego.
//
// The package reproduces the C ABI exactly where PDFium dictates it: the
// FPDF_LIBRARY_CONFIG, FPDF_FILEACCESS and FPDF_FILEWRITE struct layouts,
// and the block-read / block-write callback signatures. Handle values
// returned by PDFium are opaque pointer-sized identifiers; they are given
// distinct Go types here so a page handle cannot be passed where a document
// handle is expected.
//
// Nothing in this package serializes access to the library. That is the
// gate package's job; ffi.Bindings must only be reached through a gate
// guard.
package ffi
