package bridge

import (
	"io"
	"unsafe"

	"github.com/ebitengine/purego"

	pdferrors "github.com/wippyai/pdfium-runtime/errors"
	"github.com/wippyai/pdfium-runtime/ffi"
)

var writeBlockCallback = purego.NewCallback(writeBlock)

// flusher is satisfied by bufio.Writer and friends. The bridge flushes
// the sink after a save so buffered bytes are not left behind when the
// caller hands over ownership of the stream.
type flusher interface {
	Flush() error
}

// Writer adapts an io.Writer to PDFium's block-write protocol. Native
// code pushes the serialized document through WriteBlock in sequential
// chunks; the bridge forwards each chunk to the sink.
//
// The native protocol only carries a success bit, so the first sink
// error is retained and surfaced through Err after the save returns.
type Writer struct {
	sink  io.Writer
	desc  *ffi.FileWrite
	token uintptr
	err   error
}

// NewWriter builds a write bridge over sink.
func NewWriter(sink io.Writer) *Writer {
	w := &Writer{sink: sink}
	w.token = register(w)
	w.desc = &ffi.FileWrite{
		Version:    1,
		WriteBlock: writeBlockCallback,
		Token:      w.token,
	}
	return w
}

// Descriptor returns the FPDF_FILEWRITE pointer to pass to
// FPDF_SaveAsCopy or FPDF_SaveWithVersion. Valid until Take.
func (w *Writer) Descriptor() *ffi.FileWrite {
	return w.desc
}

// Err reports the first error the sink returned during a save, or nil.
func (w *Writer) Err() error {
	return w.err
}

// Flush flushes the sink if it is buffered. Called by the document
// layer once native code reports the save complete.
func (w *Writer) Flush() error {
	if f, ok := w.sink.(flusher); ok {
		if err := f.Flush(); err != nil {
			return pdferrors.IO(pdferrors.PhaseSave, err)
		}
	}
	return nil
}

// Take withdraws the bridge from the token table and returns the
// underlying sink to the caller. The Writer must not be used afterwards.
func (w *Writer) Take() io.Writer {
	if w.token != 0 {
		unregister(w.token)
		w.token = 0
	}
	return w.sink
}

// writeBlock receives one chunk of serialized output from native code.
// Both pointers are native memory; it reconstructs the descriptor and the
// chunk and delegates. Tests drive writeChunk directly, since converting
// a Go-allocated address back from uintptr is not legal here.
func writeBlock(pThis, data, size uintptr) uintptr {
	if pThis == 0 {
		return 0
	}
	desc := (*ffi.FileWrite)(unsafe.Pointer(pThis))
	if size == 0 {
		return writeChunk(desc, nil)
	}
	if data == 0 {
		return 0
	}
	return writeChunk(desc, unsafe.Slice((*byte)(unsafe.Pointer(data)), size))
}

// writeChunk forwards one chunk to the bridge's sink. The descriptor
// carries the bridge token in its trailing host-only field. Returns 1 on
// success, 0 to abort the save.
func writeChunk(desc *ffi.FileWrite, chunk []byte) uintptr {
	v, ok := lookup(desc.Token)
	if !ok {
		return 0
	}
	w := v.(*Writer)

	if len(chunk) == 0 {
		return 1
	}

	n, err := w.sink.Write(chunk)
	if err == nil && n < len(chunk) {
		err = io.ErrShortWrite
	}
	if err != nil {
		if w.err == nil {
			w.err = pdferrors.IO(pdferrors.PhaseSave, err)
		}
		return 0
	}
	return 1
}
