package ffi

// Opaque native handles. PDFium returns pointer-sized identifiers for the
// resources it owns; distinct Go types keep them from being mixed up.
// Zero is never a valid handle value.
type (
	Document uintptr
	Page     uintptr
	TextPage uintptr
)

// Renderer backend selection for library initialization.
// AGG (Aggregated Graphics) is PDFium's default renderer.
const (
	RendererAGG  int32 = 1
	RendererSkia int32 = 2
)

// Save flags for SaveAsCopy / SaveWithVersion.
const (
	SaveIncremental    = 1
	SaveNoIncremental  = 2
	SaveRemoveSecurity = 3
)

// LibraryConfig mirrors FPDF_LIBRARY_CONFIG. Version 4 is required for the
// renderer type field to take effect. Layout assumes 64-bit pointers, which
// purego requires anyway.
type LibraryConfig struct {
	Version        int32
	_              [4]byte
	UserFontPaths  uintptr // const char**; zero selects the default font paths
	Isolate        uintptr // void*; zero lets PDFium create its own V8 isolate
	V8EmbedderSlot uint32
	_              [4]byte
	Platform       uintptr
	RendererType   int32
	_              [4]byte
}

// FileAccess mirrors FPDF_FILEACCESS, the descriptor consumed by
// FPDF_LoadCustomDocument. GetBlock is a native code pointer produced by
// purego.NewCallback; Param is an opaque context value handed back to the
// callback on every invocation.
//
// The descriptor must stay at a stable address for the whole life of the
// document it opens: PDFium keeps the pointer and reads through it lazily.
type FileAccess struct {
	FileLen  ULong
	GetBlock uintptr // int (*)(void* param, unsigned long position, unsigned char* buf, unsigned long size)
	Param    uintptr
}

// FileWrite mirrors FPDF_FILEWRITE version 1, extended with a trailing
// token field. Native code receives a pointer to this struct as the pThis
// argument of WriteBlock and never looks past the fields it knows about,
// so the token is a safe place to smuggle the bridge identity through the
// callback.
type FileWrite struct {
	Version    int32
	_          [4]byte
	WriteBlock uintptr // int (*)(FPDF_FILEWRITE* pThis, const void* data, unsigned long size)
	Token      uintptr // not part of the native struct
}
