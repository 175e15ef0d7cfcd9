//go:build windows

package ffi

// ULong is the Go shape of the C unsigned long in PDFium's ABI.
// Windows keeps unsigned long at 32 bits even on 64-bit targets.
type ULong = uint32
