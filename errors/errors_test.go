package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseOpen,
				Kind:   KindPassword,
				Op:     "FPDF_LoadCustomDocument",
				Detail: "password is required or incorrect",
			},
			contains: []string{"[open]", "password", "FPDF_LoadCustomDocument", "required or incorrect"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLoad,
				Kind:  KindLibraryLoad,
			},
			contains: []string{"[load]", "library_load"},
		},
		{
			name: "with cause",
			err: &Error{
				Phase: PhaseSave,
				Kind:  KindIO,
				Cause: fmt.Errorf("disk full"),
			},
			contains: []string{"[save]", "io", "caused by", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want substring %q", msg, want)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := NullHandle(PhaseOpen, "FPDF_LoadCustomDocument")

	if !errors.Is(err, &Error{Phase: PhaseOpen, Kind: KindNullHandle}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhasePage, Kind: KindNullHandle}) {
		t.Error("should not match different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseOpen, Kind: KindFormat}) {
		t.Error("should not match different kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := IO(PhaseSave, cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseText, KindNotFound).
		Op("FPDFText_LoadPage").
		Detail("text page %d", 3).
		Build()

	if err.Phase != PhaseText || err.Kind != KindNotFound {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Op != "FPDFText_LoadPage" {
		t.Errorf("unexpected op: %s", err.Op)
	}
	if err.Detail != "text page 3" {
		t.Errorf("unexpected detail: %s", err.Detail)
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound(PhasePage, "page 7")

	if err.Phase != PhasePage || err.Kind != KindNotFound {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if !errors.Is(err, NotFound(PhasePage, "anything")) {
		t.Error("expected errors.Is to match on phase and kind")
	}
	if err.Detail != "page 7 not found" {
		t.Errorf("unexpected detail: %s", err.Detail)
	}
}

func TestFromLastError(t *testing.T) {
	tests := []struct {
		code uint64
		kind Kind
	}{
		{CodeFile, KindFile},
		{CodeFormat, KindFormat},
		{CodePassword, KindPassword},
		{CodeSecurity, KindSecurity},
		{CodePage, KindPage},
		{CodeUnknown, KindUnknown},
		{99, KindUnknown},
	}

	for _, tt := range tests {
		err := FromLastError(PhaseOpen, tt.code)
		if err.Kind != tt.kind {
			t.Errorf("FromLastError(%d): kind = %s, want %s", tt.code, err.Kind, tt.kind)
		}
		if err.Phase != PhaseOpen {
			t.Errorf("FromLastError(%d): phase = %s, want open", tt.code, err.Phase)
		}
	}
}

func TestFromLastError_Idempotent(t *testing.T) {
	a := FromLastError(PhaseOpen, CodePassword)
	b := FromLastError(PhaseOpen, CodePassword)
	if a.Error() != b.Error() {
		t.Errorf("same code produced different messages: %q vs %q", a.Error(), b.Error())
	}
	if !errors.Is(a, b) {
		t.Error("same code should produce matching errors")
	}
}
