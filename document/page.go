package document

import (
	"unicode/utf16"

	pdferrors "github.com/wippyai/pdfium-runtime/errors"
	"github.com/wippyai/pdfium-runtime/ffi"
	"github.com/wippyai/pdfium-runtime/gate"
	"github.com/wippyai/pdfium-runtime/handle"
)

// Page is one loaded page of a document. It keeps a share of the owning
// document's handle, so the document may be closed while pages are still
// in use.
//
// A Page is not safe for concurrent use by multiple goroutines.
type Page struct {
	h   *handle.Handle[ffi.Page]
	doc *handle.Handle[ffi.Document]
}

// Close releases the page and its share of the document handle. Safe to
// call more than once.
func (p *Page) Close() {
	p.h.Close()
	p.doc.Close()
}

// Width returns the page width in points (1/72 inch).
func (p *Page) Width() float64 {
	guard := gate.MustAcquire()
	defer guard.Release()
	return float64(guard.Lib().GetPageWidthF(p.h.Raw()))
}

// Height returns the page height in points.
func (p *Page) Height() float64 {
	guard := gate.MustAcquire()
	defer guard.Release()
	return float64(guard.Lib().GetPageHeightF(p.h.Raw()))
}

// Text extracts the page text in natural reading order. Pages without
// text content yield the empty string.
func (p *Page) Text() (string, error) {
	guard := gate.MustAcquire()
	defer guard.Release()

	lib := guard.Lib()
	tp := lib.TextLoadPage(p.h.Raw())
	if tp == 0 {
		return "", pdferrors.NullHandle(pdferrors.PhaseText, "FPDFText_LoadPage")
	}
	defer lib.TextClosePage(tp)

	count := lib.TextCountChars(tp)
	if count <= 0 {
		return "", nil
	}

	// Room for the terminator the native call always appends.
	units := make([]uint16, count+1)
	n := lib.TextGetText(tp, 0, count, units)
	if n <= 0 {
		return "", nil
	}
	// n counts units written including the terminator.
	return string(utf16.Decode(units[:n-1])), nil
}
