package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad   Phase = "load"   // locating and binding the native library
	PhaseOpen   Phase = "open"   // opening or parsing a document
	PhaseSave   Phase = "save"   // serializing a document
	PhasePage   Phase = "page"   // page-level operations
	PhaseText   Phase = "text"   // text extraction
	PhaseHandle Phase = "handle" // native handle lifecycle
)

// Kind categorizes the error
type Kind string

const (
	// KindLibraryLoad is permanent for the process: the native library could
	// not be located, loaded, or initialized. The gate memoizes it and every
	// later acquisition returns the same error.
	KindLibraryLoad Kind = "library_load"

	// KindNullHandle means a native call documented to return a valid handle
	// returned null instead.
	KindNullHandle Kind = "null_handle"

	// KindIO wraps a failure of a caller-supplied reader or writer.
	KindIO Kind = "io"

	// KindNotFound means a requested item (such as a page index) does not
	// exist in the document.
	KindNotFound Kind = "not_found"

	// Kinds mapped from FPDF_GetLastError after a null-returning native call.
	KindFile     Kind = "file"
	KindFormat   Kind = "format"
	KindPassword Kind = "password"
	KindSecurity Kind = "security"
	KindPage     Kind = "page"
	KindUnknown  Kind = "unknown"
)

// Native last-error codes, as reported by FPDF_GetLastError.
const (
	CodeSuccess  = 0
	CodeUnknown  = 1
	CodeFile     = 2
	CodeFormat   = 3
	CodePassword = 4
	CodeSecurity = 5
	CodePage     = 6
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string // native entry point or operation name
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the native entry point or operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// LibraryLoad creates the permanent library load error memoized by the gate.
func LibraryLoad(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindLibraryLoad,
		Detail: detail,
		Cause:  cause,
	}
}

// NullHandle creates an error for a native call that returned a null handle
// where a valid one was documented.
func NullHandle(phase Phase, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNullHandle,
		Op:     op,
		Detail: "native call returned a null handle",
	}
}

// IO wraps a failure of a caller-supplied reader or writer.
func IO(phase Phase, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		Cause: cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s not found", what),
	}
}

// FromLastError maps a native FPDF_GetLastError code, queried after a
// null-returning call, to a typed error. Codes outside the documented range
// map to KindUnknown.
func FromLastError(phase Phase, code uint64) *Error {
	var kind Kind
	var detail string
	switch code {
	case CodeFile:
		kind, detail = KindFile, "file cannot be opened or read"
	case CodeFormat:
		kind, detail = KindFormat, "file is not a PDF or is corrupted"
	case CodePassword:
		kind, detail = KindPassword, "password is required or incorrect"
	case CodeSecurity:
		kind, detail = KindSecurity, "unsupported security scheme"
	case CodePage:
		kind, detail = KindPage, "page not found or content error"
	default:
		kind, detail = KindUnknown, fmt.Sprintf("native error code %d", code)
	}
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
	}
}
