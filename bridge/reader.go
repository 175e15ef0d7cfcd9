package bridge

import (
	"errors"
	"io"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/wippyai/pdfium-runtime/ffi"
)

// readBlockCallback is the native code pointer for the block-read
// protocol. Created once; purego callbacks are a finite resource.
var readBlockCallback = purego.NewCallback(readBlock)

// Reader adapts an io.ReadSeeker to PDFium's block-read protocol so a
// document can be opened from any seekable byte source.
//
// The Reader is consumed by FPDF_LoadCustomDocument via Descriptor and
// must then be kept alive, unclosed, for the entire life of the resulting
// document: PDFium stores the descriptor pointer and reads through it on
// demand, page by page.
type Reader struct {
	src    io.ReadSeeker
	access *ffi.FileAccess
	token  uintptr
}

// NewReader builds a read bridge over src. The total length is captured
// up front by seeking to the end; a source that cannot report its length
// is treated as empty rather than failing, matching the native protocol's
// lack of an error channel.
func NewReader(src io.ReadSeeker) *Reader {
	length, err := src.Seek(0, io.SeekEnd)
	if err != nil || length < 0 {
		length = 0
	}

	r := &Reader{src: src}
	r.token = register(r)
	// The descriptor gets its own allocation so its address stays stable
	// while native code holds it.
	r.access = &ffi.FileAccess{
		FileLen:  ffi.ULong(length),
		GetBlock: readBlockCallback,
		Param:    r.token,
	}
	return r
}

// Descriptor returns the FPDF_FILEACCESS pointer to pass to
// FPDF_LoadCustomDocument. Valid until Close.
func (r *Reader) Descriptor() *ffi.FileAccess {
	return r.access
}

// Len returns the source length captured at construction.
func (r *Reader) Len() uint64 {
	return uint64(r.access.FileLen)
}

// Close withdraws the bridge from the token table. Must not be called
// while any native call can still read from the document this bridge
// opened; the owning document calls it after the document handle closes.
func (r *Reader) Close() {
	if r.token != 0 {
		unregister(r.token)
		r.token = 0
	}
}

// readBlock is invoked by native code, any number of times and in any
// order, for the life of the open document. It wraps the native buffer
// and delegates; tests drive readBlockInto directly, since buf is native
// memory here and must not originate from a Go allocation.
func readBlock(param, position, buf, size uintptr) uintptr {
	if buf == 0 || size == 0 {
		return 0
	}
	return readBlockInto(param, position, unsafe.Slice((*byte)(unsafe.Pointer(buf)), size))
}

// readBlockInto seeks the source to position, fills dst, and returns the
// count actually read. Every host-side failure collapses to 0; the
// protocol cannot distinguish EOF from error.
func readBlockInto(param, position uintptr, dst []byte) uintptr {
	v, ok := lookup(param)
	if !ok {
		return 0
	}
	r := v.(*Reader)

	if _, err := r.src.Seek(int64(position), io.SeekStart); err != nil {
		return 0
	}

	n, err := io.ReadFull(r.src, dst)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		// Clean EOF at position (n == 0) or a genuine read error.
		return 0
	}
	return uintptr(n)
}
