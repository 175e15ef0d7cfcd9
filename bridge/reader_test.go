package bridge

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// callRead drives the block-read path the way native code would. It goes
// through the slice seam rather than readBlock itself: a test buffer is a
// Go allocation, and round-tripping its address through uintptr is only
// legal for the native memory real callers pass.
func callRead(t *testing.T, param uintptr, position uint64, size int) (uintptr, []byte) {
	t.Helper()
	buf := make([]byte, size)
	n := readBlockInto(param, uintptr(position), buf)
	return n, buf
}

func TestReaderLength(t *testing.T) {
	data := []byte("0123456789")
	r := NewReader(bytes.NewReader(data))
	defer r.Close()

	if got := r.Len(); got != uint64(len(data)) {
		t.Fatalf("Len() = %d, want %d", got, len(data))
	}
	if got := uint64(r.Descriptor().FileLen); got != uint64(len(data)) {
		t.Fatalf("descriptor FileLen = %d, want %d", got, len(data))
	}
}

func TestReadBlockFullRange(t *testing.T) {
	data := []byte("hello, pdfium")
	r := NewReader(bytes.NewReader(data))
	defer r.Close()

	n, buf := callRead(t, r.access.Param, 0, len(data))
	if n != uintptr(len(data)) {
		t.Fatalf("readBlock returned %d, want %d", n, len(data))
	}
	if !bytes.Equal(buf, data) {
		t.Fatalf("readBlock filled %q, want %q", buf, data)
	}
}

func TestReadBlockRandomAccess(t *testing.T) {
	data := []byte("0123456789abcdef")
	r := NewReader(bytes.NewReader(data))
	defer r.Close()

	// Out-of-order block reads, as PDFium issues them while walking the
	// cross-reference table.
	for _, tc := range []struct {
		position uint64
		size     int
		want     string
	}{
		{12, 4, "cdef"},
		{0, 4, "0123"},
		{8, 2, "89"},
	} {
		n, buf := callRead(t, r.access.Param, tc.position, tc.size)
		if n != uintptr(tc.size) {
			t.Fatalf("readBlock(pos=%d, size=%d) = %d, want %d", tc.position, tc.size, n, tc.size)
		}
		if string(buf) != tc.want {
			t.Fatalf("readBlock(pos=%d) filled %q, want %q", tc.position, buf, tc.want)
		}
	}
}

func TestReadBlockShortTail(t *testing.T) {
	data := []byte("abcdef")
	r := NewReader(bytes.NewReader(data))
	defer r.Close()

	// Request past the end: partial fill, count reflects what was read.
	n, buf := callRead(t, r.access.Param, 4, 8)
	if n != 2 {
		t.Fatalf("readBlock past end returned %d, want 2", n)
	}
	if string(buf[:2]) != "ef" {
		t.Fatalf("readBlock tail filled %q, want %q", buf[:2], "ef")
	}
}

func TestReadBlockBeyondEnd(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("abc")))
	defer r.Close()

	if n, _ := callRead(t, r.access.Param, 100, 4); n != 0 {
		t.Fatalf("readBlock beyond end returned %d, want 0", n)
	}
}

func TestReadBlockZeroSizeOrNilBuffer(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("abc")))
	defer r.Close()

	// The raw callback rejects degenerate native arguments before
	// touching the buffer.
	if n := readBlock(r.access.Param, 0, 0, 0); n != 0 {
		t.Fatalf("readBlock with zero size returned %d, want 0", n)
	}
	if n := readBlock(r.access.Param, 0, 0, 4); n != 0 {
		t.Fatalf("readBlock with nil buffer returned %d, want 0", n)
	}
}

func TestReadBlockUnknownToken(t *testing.T) {
	if n, _ := callRead(t, 0xdeadbeef, 0, 4); n != 0 {
		t.Fatalf("read with stale token returned %d, want 0", n)
	}
}

func TestReadBlockAfterClose(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("abc")))
	tok := r.access.Param
	r.Close()

	if n, _ := callRead(t, tok, 0, 3); n != 0 {
		t.Fatalf("readBlock after Close returned %d, want 0", n)
	}
}

func TestReaderCloseIdempotent(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("abc")))
	r.Close()
	r.Close()
}

// unsizedReader seeks but refuses to report a length.
type unsizedReader struct {
	strings.Reader
}

func (u *unsizedReader) Seek(offset int64, whence int) (int64, error) {
	if whence == 2 { // io.SeekEnd
		return 0, errSeek
	}
	return u.Reader.Seek(offset, whence)
}

var errSeek = errors.New("length unavailable")

func TestReaderUnsizedSourceLengthZero(t *testing.T) {
	u := &unsizedReader{}
	u.Reset("payload")
	r := NewReader(u)
	defer r.Close()

	if got := r.Len(); got != 0 {
		t.Fatalf("Len() for unsized source = %d, want 0", got)
	}
}

func TestReadersGetDistinctTokens(t *testing.T) {
	a := NewReader(bytes.NewReader([]byte("aaaa")))
	defer a.Close()
	b := NewReader(bytes.NewReader([]byte("bbbb")))
	defer b.Close()

	if a.access.Param == b.access.Param {
		t.Fatal("two live readers share a token")
	}

	n, buf := callRead(t, b.access.Param, 0, 4)
	if n != 4 || string(buf) != "bbbb" {
		t.Fatalf("second reader served %q (n=%d), want %q", buf, n, "bbbb")
	}
}
