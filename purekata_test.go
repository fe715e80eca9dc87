// nolint:errcheck
package purekata

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// ============================================================================
// ReadFunc Tests
// ============================================================================

func TestReadFunc_Read(t *testing.T) {
	reader := ReadFunc(strings.NewReader("hello world").Read)

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "hello world" {
		t.Errorf("expected 'hello world', got '%s'", data)
	}
}

func TestReadFunc_Map(t *testing.T) {
	reader := ReadFunc(strings.NewReader("hello").Read).Map(bytes.ToUpper)

	data, _ := io.ReadAll(reader)
	if string(data) != "HELLO" {
		t.Errorf("expected 'HELLO', got '%s'", data)
	}
}

func TestReadFunc_Map_WithError(t *testing.T) {
	expectedErr := errors.New("read error")
	reader := ReadFunc(func(p []byte) (int, error) {
		return 0, expectedErr
	}).Map(bytes.ToUpper)

	n, err := reader.Read(make([]byte, 10))
	if n != 0 {
		t.Errorf("expected 0 bytes on error, got %d", n)
	}
	if err != expectedErr {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestReadFunc_Take(t *testing.T) {
	reader := ReadFunc(strings.NewReader("hello world").Read).Take(5)

	data, _ := io.ReadAll(reader)
	if string(data) != "hello" {
		t.Errorf("expected 'hello', got '%s'", data)
	}
}

func TestReadFunc_Tap(t *testing.T) {
	var seen bytes.Buffer
	reader := ReadFunc(strings.NewReader("tapped").Read).Tap(func(chunk []byte, _ error) {
		seen.Write(chunk)
	})

	io.ReadAll(reader)
	if seen.String() != "tapped" {
		t.Errorf("expected tap to see 'tapped', got '%s'", seen.String())
	}
}

// ============================================================================
// WriteFunc Tests
// ============================================================================

func TestWriteFunc_Tee(t *testing.T) {
	var a, b bytes.Buffer
	writer := WriteFunc(a.Write).Tee(WriteFunc(b.Write))

	n, err := writer.Write([]byte("both"))
	if err != nil || n != 4 {
		t.Fatalf("expected 4 bytes and no error, got %d, %v", n, err)
	}
	if a.String() != "both" || b.String() != "both" {
		t.Errorf("expected both buffers to hold 'both', got %q and %q", a.String(), b.String())
	}
}

func TestWriteFunc_Tee_ShortWrite(t *testing.T) {
	short := WriteFunc(func(p []byte) (int, error) { return len(p) - 1, nil })
	_, err := WriteFunc(io.Discard.Write).Tee(short).Write([]byte("abc"))
	if err != io.ErrShortWrite {
		t.Errorf("expected ErrShortWrite, got %v", err)
	}
}

func TestCounted(t *testing.T) {
	var buf bytes.Buffer
	var stats WriteStats
	w := Counted(&buf, &stats)

	w.Write([]byte("true\n"))
	w.Write([]byte("false\nfalse\n"))

	bytesN, writes, lines, errs := stats.Snapshot()
	if bytesN != 17 || writes != 2 || lines != 3 || errs != 0 {
		t.Errorf("unexpected stats: bytes=%d writes=%d lines=%d errors=%d", bytesN, writes, lines, errs)
	}
}

func TestCounted_Error(t *testing.T) {
	var stats WriteStats
	failing := WriteFunc(func([]byte) (int, error) { return 0, errors.New("closed") })
	Counted(failing, &stats).Write([]byte("x"))

	if _, _, _, errs := stats.Snapshot(); errs != 1 {
		t.Errorf("expected 1 error, got %d", errs)
	}
}

// ============================================================================
// StringerFunc Tests
// ============================================================================

func TestStringerFunc(t *testing.T) {
	s := Text("crap").Surround("<strike>", "</strike>")
	if s.String() != "<strike>crap</strike>" {
		t.Errorf("unexpected %q", s.String())
	}

	joined := Text("a").Join("-", Text("b"), Text("c"))
	if joined.String() != "a-b-c" {
		t.Errorf("expected 'a-b-c', got %q", joined.String())
	}

	if got := Text("solo").Join(", ").String(); got != "solo" {
		t.Errorf("expected 'solo', got %q", got)
	}
}

func TestJoinStrings(t *testing.T) {
	if got := JoinStrings(" ", "Horc", "G.", "M.", "Moon"); got != "Horc G. M. Moon" {
		t.Errorf("unexpected %q", got)
	}
	if got := JoinStrings(" "); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

// ============================================================================
// CodedError Tests
// ============================================================================

func TestWithExitCode(t *testing.T) {
	base := errors.New("boom")
	err := WithExitCode(base, 3)

	var coded *CodedError
	if !errors.As(err, &coded) || coded.Code() != 3 {
		t.Fatalf("expected CodedError with code 3, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Error("CodedError should unwrap to the base error")
	}
	if WithExitCode(nil, 1) != nil {
		t.Error("nil error should stay nil")
	}
}
