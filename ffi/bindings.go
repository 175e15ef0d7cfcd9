package ffi

import (
	"fmt"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	pdferrors "github.com/wippyai/pdfium-runtime/errors"
)

// Bindings is the bound PDFium function table. It is immutable after Load
// and shared read-only for the rest of the process; all serialization
// happens in the gate package.
type Bindings struct {
	initLibraryWithConfig func(config *LibraryConfig)
	destroyLibrary        func()
	getLastError          func() ULong

	loadCustomDocument func(fileAccess *FileAccess, password string) Document
	closeDocument      func(doc Document)
	createNewDocument  func() Document
	importPages        func(dest Document, src Document, pageRange string, index int32) int32
	getFileVersion     func(doc Document, version *int32) int32
	getDocPermissions  func(doc Document) ULong
	getMetaText        func(doc Document, tag string, buf unsafe.Pointer, buflen ULong) ULong
	getPageCount       func(doc Document) int32

	loadPage       func(doc Document, index int32) Page
	closePage      func(page Page)
	getPageWidthF  func(page Page) float32
	getPageHeightF func(page Page) float32

	textLoadPage   func(page Page) TextPage
	textClosePage  func(textPage TextPage)
	textCountChars func(textPage TextPage) int32
	textGetText    func(textPage TextPage, start, count int32, result *uint16) int32

	saveAsCopy      func(doc Document, fileWrite *FileWrite, flags ULong) int32
	saveWithVersion func(doc Document, fileWrite *FileWrite, flags ULong, version int32) int32
}

// LibraryFilename returns the PDFium shared library filename for this
// platform, with the conventional prefix and suffix applied.
func LibraryFilename() string {
	switch runtime.GOOS {
	case "windows":
		return "pdfium.dll"
	case "darwin":
		return "libpdfium.dylib"
	default:
		return "libpdfium.so"
	}
}

// Load opens the PDFium shared library and binds its function table.
//
// The path may be a plain filename, in which case the platform's default
// library search applies, or an absolute or relative path to the library.
func Load(path string) (*Bindings, error) {
	lib, err := dlopen(path)
	if err != nil {
		return nil, pdferrors.LibraryLoad("open shared library", err)
	}
	b := &Bindings{}
	if err := b.bind(lib); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadFromDirectory loads the PDFium shared library from the given
// directory, using the platform filename from LibraryFilename.
func LoadFromDirectory(dir string) (*Bindings, error) {
	return Load(filepath.Join(dir, LibraryFilename()))
}

// bind registers every entry point in the table. purego.RegisterLibFunc
// panics on a missing symbol; the panic is recovered into a typed load
// error so a mismatched library version fails cleanly.
func (b *Bindings) bind(lib uintptr) (err error) {
	var current string
	defer func() {
		if r := recover(); r != nil {
			err = pdferrors.LibraryLoad(fmt.Sprintf("bind %s: %v", current, r), nil)
		}
	}()

	reg := func(fptr any, name string) {
		current = name
		purego.RegisterLibFunc(fptr, lib, name)
	}

	reg(&b.initLibraryWithConfig, "FPDF_InitLibraryWithConfig")
	reg(&b.destroyLibrary, "FPDF_DestroyLibrary")
	reg(&b.getLastError, "FPDF_GetLastError")

	reg(&b.loadCustomDocument, "FPDF_LoadCustomDocument")
	reg(&b.closeDocument, "FPDF_CloseDocument")
	reg(&b.createNewDocument, "FPDF_CreateNewDocument")
	reg(&b.importPages, "FPDF_ImportPages")
	reg(&b.getFileVersion, "FPDF_GetFileVersion")
	reg(&b.getDocPermissions, "FPDF_GetDocPermissions")
	reg(&b.getMetaText, "FPDF_GetMetaText")
	reg(&b.getPageCount, "FPDF_GetPageCount")

	reg(&b.loadPage, "FPDF_LoadPage")
	reg(&b.closePage, "FPDF_ClosePage")
	reg(&b.getPageWidthF, "FPDF_GetPageWidthF")
	reg(&b.getPageHeightF, "FPDF_GetPageHeightF")

	reg(&b.textLoadPage, "FPDFText_LoadPage")
	reg(&b.textClosePage, "FPDFText_ClosePage")
	reg(&b.textCountChars, "FPDFText_CountChars")
	reg(&b.textGetText, "FPDFText_GetText")

	reg(&b.saveAsCopy, "FPDF_SaveAsCopy")
	reg(&b.saveWithVersion, "FPDF_SaveWithVersion")

	return nil
}

// Init performs the one-time native initialization. The useSkia parameter
// selects the Skia renderer; the default is AGG.
//
// Must be called exactly once, before any other PDFium entry point.
func (b *Bindings) Init(useSkia bool) {
	cfg := &LibraryConfig{
		Version:      4, // renderer selection requires config version 4
		RendererType: RendererAGG,
	}
	if useSkia {
		cfg.RendererType = RendererSkia
	}
	b.initLibraryWithConfig(cfg)
	runtime.KeepAlive(cfg)
}

// GetLastError returns the native error code recorded by the most recent
// failing call. Only meaningful immediately after a null-returning call.
func (b *Bindings) GetLastError() uint64 {
	return uint64(b.getLastError())
}

// LoadCustomDocument opens a document through a block-read descriptor.
// Returns the zero Document on failure; query GetLastError for the cause.
func (b *Bindings) LoadCustomDocument(fa *FileAccess, password string) Document {
	return b.loadCustomDocument(fa, password)
}

// CloseDocument releases a document and every native resource it owns.
func (b *Bindings) CloseDocument(doc Document) {
	b.closeDocument(doc)
}

// CreateNewDocument creates an empty document.
func (b *Bindings) CreateNewDocument() Document {
	return b.createNewDocument()
}

// ImportPages copies pages from src into dest before the page at index.
// pageRange follows PDFium syntax ("1,3,5-7"); empty imports all pages.
func (b *Bindings) ImportPages(dest, src Document, pageRange string, index int32) bool {
	return b.importPages(dest, src, pageRange, index) != 0
}

// GetFileVersion reports the PDF version of an opened document
// (14 for 1.4, 15 for 1.5, ...). False for created, unsaved documents.
func (b *Bindings) GetFileVersion(doc Document) (int32, bool) {
	var v int32
	ok := b.getFileVersion(doc, &v) != 0
	return v, ok
}

// GetDocPermissions returns the document permission bits.
func (b *Bindings) GetDocPermissions(doc Document) uint64 {
	return uint64(b.getDocPermissions(doc))
}

// GetMetaText copies the UTF-16LE value of a metadata tag ("Title",
// "Author", ...) into buf and returns the byte length of the full value
// including the terminator. Call with a nil buffer to size first.
func (b *Bindings) GetMetaText(doc Document, tag string, buf []byte) uint64 {
	var p unsafe.Pointer
	if len(buf) > 0 {
		p = unsafe.Pointer(&buf[0])
	}
	return uint64(b.getMetaText(doc, tag, p, ULong(len(buf))))
}

// GetPageCount returns the number of pages in the document.
func (b *Bindings) GetPageCount(doc Document) int32 {
	return b.getPageCount(doc)
}

// LoadPage loads the page at index. Returns the zero Page on failure.
func (b *Bindings) LoadPage(doc Document, index int32) Page {
	return b.loadPage(doc, index)
}

// ClosePage releases a loaded page.
func (b *Bindings) ClosePage(page Page) {
	b.closePage(page)
}

// GetPageWidthF returns the page width in points.
func (b *Bindings) GetPageWidthF(page Page) float32 {
	return b.getPageWidthF(page)
}

// GetPageHeightF returns the page height in points.
func (b *Bindings) GetPageHeightF(page Page) float32 {
	return b.getPageHeightF(page)
}

// TextLoadPage prepares a page for text extraction.
// Returns the zero TextPage on failure.
func (b *Bindings) TextLoadPage(page Page) TextPage {
	return b.textLoadPage(page)
}

// TextClosePage releases a text page.
func (b *Bindings) TextClosePage(tp TextPage) {
	b.textClosePage(tp)
}

// TextCountChars returns the number of characters on a text page.
func (b *Bindings) TextCountChars(tp TextPage) int32 {
	return b.textCountChars(tp)
}

// TextGetText copies count characters starting at start into result as
// UTF-16LE code units plus a terminator, returning the number of units
// written. result must have room for count+1 units.
func (b *Bindings) TextGetText(tp TextPage, start, count int32, result []uint16) int32 {
	if len(result) == 0 {
		return 0
	}
	return b.textGetText(tp, start, count, &result[0])
}

// SaveAsCopy serializes the document through a block-write descriptor.
// A false return means either a native failure or a rejected write block.
func (b *Bindings) SaveAsCopy(doc Document, fw *FileWrite, flags uint32) bool {
	return b.saveAsCopy(doc, fw, ULong(flags)) != 0
}

// SaveWithVersion is SaveAsCopy with an explicit PDF version for the
// output (14 for 1.4, 15 for 1.5, ...).
func (b *Bindings) SaveWithVersion(doc Document, fw *FileWrite, flags uint32, version int32) bool {
	return b.saveWithVersion(doc, fw, ULong(flags), version) != 0
}

// DestroyLibrary releases PDFium's global state. The gate never calls this:
// the load outcome is final for the process lifetime. Exposed for embedders
// that tear down the process manually.
func (b *Bindings) DestroyLibrary() {
	b.destroyLibrary()
}
