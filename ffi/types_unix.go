//go:build !windows

package ffi

// ULong is the Go shape of the C unsigned long in PDFium's ABI.
// 64 bits everywhere except Windows.
type ULong = uint64
