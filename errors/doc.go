// Package errors provides structured error types for the pdfium-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the native operation name, a detail
// message, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseOpen, errors.KindPassword).
//		Op("FPDF_LoadCustomDocument").
//		Detail("document requires a password").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NullHandle(errors.PhaseOpen, "FPDF_LoadCustomDocument")
//	err := errors.FromLastError(errors.PhaseOpen, code)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Phase and Kind agree,
// which is how callers distinguish a wrong password from a corrupt file
// without string comparison.
package errors
