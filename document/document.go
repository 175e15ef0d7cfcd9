package document

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unicode/utf16"

	"github.com/wippyai/pdfium-runtime/bridge"
	pdferrors "github.com/wippyai/pdfium-runtime/errors"
	"github.com/wippyai/pdfium-runtime/ffi"
	"github.com/wippyai/pdfium-runtime/gate"
	"github.com/wippyai/pdfium-runtime/handle"
)

// SaveFlags selects the serialization mode for Save and SaveToWriter.
type SaveFlags uint32

const (
	SaveIncremental    SaveFlags = ffi.SaveIncremental
	SaveNoIncremental  SaveFlags = ffi.SaveNoIncremental
	SaveRemoveSecurity SaveFlags = ffi.SaveRemoveSecurity
)

// Document is an open PDF document. It owns its native handle; pages
// loaded from it hold a share of that handle, so the native document
// outlives every open page regardless of close order.
//
// A Document is not safe for concurrent use by multiple goroutines.
type Document struct {
	h *handle.Handle[ffi.Document]
}

// Open opens the PDF at path. The file stays open for the life of the
// document and is closed when the document's native handle is released.
// An empty password opens unprotected documents.
func Open(path, password string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pdferrors.IO(pdferrors.PhaseOpen, err)
	}
	doc, err := open(f, password, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return doc, nil
}

// OpenReader opens a document from any seekable byte source. The source
// must remain readable until the document is closed; native code pulls
// blocks from it on demand, page by page.
func OpenReader(rs io.ReadSeeker, password string) (*Document, error) {
	return open(rs, password, nil)
}

// OpenBytes opens a document held entirely in memory.
func OpenBytes(b []byte, password string) (*Document, error) {
	return open(bytes.NewReader(b), password, nil)
}

func open(rs io.ReadSeeker, password string, closer io.Closer) (*Document, error) {
	guard, err := gate.Acquire()
	if err != nil {
		return nil, err
	}
	defer guard.Release()

	lib := guard.Lib()
	r := bridge.NewReader(rs)
	raw := lib.LoadCustomDocument(r.Descriptor(), password)
	if raw == 0 {
		code := lib.GetLastError()
		r.Close()
		e := pdferrors.FromLastError(pdferrors.PhaseOpen, code)
		e.Op = "FPDF_LoadCustomDocument"
		return nil, e
	}

	// The read bridge and the backing source are released by the handle
	// finalizer, strictly after the native document closes.
	h, err := handle.New(raw, func(raw ffi.Document) {
		g := gate.MustAcquire()
		defer g.Release()
		g.Lib().CloseDocument(raw)
		r.Close()
		if closer != nil {
			closer.Close()
		}
	})
	if err != nil {
		return nil, err
	}
	return &Document{h: h}, nil
}

// New creates an empty in-memory document, populated via ImportPages and
// serialized via Save or SaveToWriter.
func New() (*Document, error) {
	guard, err := gate.Acquire()
	if err != nil {
		return nil, err
	}
	defer guard.Release()

	raw := guard.Lib().CreateNewDocument()
	if raw == 0 {
		return nil, pdferrors.NullHandle(pdferrors.PhaseOpen, "FPDF_CreateNewDocument")
	}
	h, err := handle.New(raw, func(raw ffi.Document) {
		g := gate.MustAcquire()
		defer g.Release()
		g.Lib().CloseDocument(raw)
	})
	if err != nil {
		return nil, err
	}
	return &Document{h: h}, nil
}

// Close releases this document's share of the native handle. The native
// document is destroyed once every open page is closed too. Safe to call
// more than once.
func (d *Document) Close() {
	d.h.Close()
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	guard := gate.MustAcquire()
	defer guard.Release()
	return int(guard.Lib().GetPageCount(d.h.Raw()))
}

// Page loads the page at index (zero-based). The page holds a share of
// the document handle, so closing the document before the page is safe.
func (d *Document) Page(index int) (*Page, error) {
	guard := gate.MustAcquire()
	defer guard.Release()

	lib := guard.Lib()
	if count := int(lib.GetPageCount(d.h.Raw())); index < 0 || index >= count {
		return nil, pdferrors.NotFound(pdferrors.PhasePage, fmt.Sprintf("page %d of %d", index, count))
	}
	raw := lib.LoadPage(d.h.Raw(), int32(index))
	if raw == 0 {
		e := pdferrors.FromLastError(pdferrors.PhasePage, lib.GetLastError())
		e.Op = "FPDF_LoadPage"
		return nil, e
	}
	h, err := handle.New(raw, func(raw ffi.Page) {
		g := gate.MustAcquire()
		defer g.Release()
		g.Lib().ClosePage(raw)
	})
	if err != nil {
		return nil, err
	}
	return &Page{h: h, doc: d.h.Clone()}, nil
}

// Metadata returns the value of a document information tag ("Title",
// "Author", "Subject", "Creator", "Producer", "CreationDate", "ModDate").
// An absent tag yields the empty string.
func (d *Document) Metadata(tag string) string {
	guard := gate.MustAcquire()
	defer guard.Release()

	lib := guard.Lib()
	// Size first, then fetch. The reported length counts UTF-16LE bytes
	// including the terminator.
	n := lib.GetMetaText(d.h.Raw(), tag, nil)
	if n <= 2 {
		return ""
	}
	buf := make([]byte, n)
	lib.GetMetaText(d.h.Raw(), tag, buf)
	return decodeUTF16LE(buf[:n-2])
}

// FileVersion reports the PDF version of the opened file, as 10 times the
// dotted version (14 for 1.4). The second return is false for documents
// created with New that have never been saved.
func (d *Document) FileVersion() (int, bool) {
	guard := gate.MustAcquire()
	defer guard.Release()

	v, ok := guard.Lib().GetFileVersion(d.h.Raw())
	return int(v), ok
}

// Permissions returns the document's permission bits. All bits are set
// for documents without encryption.
func (d *Document) Permissions() uint64 {
	guard := gate.MustAcquire()
	defer guard.Release()
	return guard.Lib().GetDocPermissions(d.h.Raw())
}

// ImportPages copies pages from src into this document before the page at
// index. pageRange follows native syntax ("1,3,5-7", one-based); the
// empty string imports every page.
func (d *Document) ImportPages(src *Document, pageRange string, index int) error {
	guard := gate.MustAcquire()
	defer guard.Release()

	if !guard.Lib().ImportPages(d.h.Raw(), src.h.Raw(), pageRange, int32(index)) {
		return pdferrors.New(pdferrors.PhasePage, pdferrors.KindPage).
			Op("FPDF_ImportPages").
			Detail("page range %q rejected", pageRange).
			Build()
	}
	return nil
}

// SaveToWriter serializes the document into w. If w is buffered it is
// flushed before returning. A failure of w during the save aborts the
// native call and is returned here.
func (d *Document) SaveToWriter(w io.Writer, flags SaveFlags) error {
	return d.save(w, flags, 0, false)
}

// SaveWithVersion is SaveToWriter with an explicit PDF version for the
// output, as 10 times the dotted version (17 for 1.7).
func (d *Document) SaveWithVersion(w io.Writer, flags SaveFlags, version int) error {
	return d.save(w, flags, version, true)
}

// Save serializes the document to a file at path, replacing any existing
// file.
func (d *Document) Save(path string, flags SaveFlags) error {
	f, err := os.Create(path)
	if err != nil {
		return pdferrors.IO(pdferrors.PhaseSave, err)
	}
	if err := d.SaveToWriter(f, flags); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return pdferrors.IO(pdferrors.PhaseSave, err)
	}
	return nil
}

func (d *Document) save(w io.Writer, flags SaveFlags, version int, withVersion bool) error {
	guard := gate.MustAcquire()
	defer guard.Release()

	bw := bridge.NewWriter(w)
	defer bw.Take()

	lib := guard.Lib()
	var ok bool
	if withVersion {
		ok = lib.SaveWithVersion(d.h.Raw(), bw.Descriptor(), uint32(flags), int32(version))
	} else {
		ok = lib.SaveAsCopy(d.h.Raw(), bw.Descriptor(), uint32(flags))
	}
	if !ok {
		// Prefer the sink's own error over the bare native failure.
		if err := bw.Err(); err != nil {
			return err
		}
		return pdferrors.New(pdferrors.PhaseSave, pdferrors.KindUnknown).
			Op(saveOp(withVersion)).
			Detail("native save failed").
			Build()
	}
	return bw.Flush()
}

func saveOp(withVersion bool) string {
	if withVersion {
		return "FPDF_SaveWithVersion"
	}
	return "FPDF_SaveAsCopy"
}

// decodeUTF16LE converts a UTF-16LE byte sequence (without terminator) to
// a Go string.
func decodeUTF16LE(b []byte) string {
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, binary.LittleEndian.Uint16(b[i:]))
	}
	return string(utf16.Decode(units))
}
