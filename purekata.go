package purekata

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ============================================================================
// IO Bindings
// ============================================================================

// ReadFunc is a functional binding for io.Reader.
//
// Example:
//
//	stdin := ReadFunc(os.Stdin.Read).Map(bytes.ToUpper).Take(1 << 16)
type ReadFunc func(p []byte) (n int, err error)

// Read implements io.Reader.
func (f ReadFunc) Read(p []byte) (int, error) {
	return f(p)
}

// Map rewrites each chunk in place as it is read. The transform must not
// change the chunk length.
func (f ReadFunc) Map(transform func([]byte) []byte) ReadFunc {
	return func(p []byte) (int, error) {
		n, err := f(p)
		if n > 0 {
			copy(p[:n], transform(p[:n]))
		}
		return n, err
	}
}

// Take stops after limit bytes have been read.
func (f ReadFunc) Take(limit int64) ReadFunc {
	remaining := limit
	return func(p []byte) (int, error) {
		if remaining <= 0 {
			return 0, io.EOF
		}
		if int64(len(p)) > remaining {
			p = p[:remaining]
		}
		n, err := f(p)
		remaining -= int64(n)
		return n, err
	}
}

// Tap observes every read without changing it.
func (f ReadFunc) Tap(fn func(chunk []byte, err error)) ReadFunc {
	return func(p []byte) (int, error) {
		n, err := f(p)
		fn(p[:n], err)
		return n, err
	}
}

// WriteFunc is a functional binding for io.Writer.
type WriteFunc func(p []byte) (n int, err error)

// Write implements io.Writer.
func (f WriteFunc) Write(p []byte) (int, error) {
	return f(p)
}

// Tee writes to f and then to every other writer.
func (f WriteFunc) Tee(others ...WriteFunc) WriteFunc {
	all := append([]WriteFunc{f}, others...)
	return func(p []byte) (int, error) {
		for _, w := range all {
			n, err := w(p)
			if err != nil {
				return n, err
			}
			if n != len(p) {
				return n, io.ErrShortWrite
			}
		}
		return len(p), nil
	}
}

// WriteStats counts what passed through a writer built by Counted.
type WriteStats struct {
	mu     sync.Mutex
	Bytes  int64
	Writes int64
	Lines  int64
	Errors int64
}

// Snapshot returns the counters under lock.
func (s *WriteStats) Snapshot() (bytes, writes, lines, errs int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Bytes, s.Writes, s.Lines, s.Errors
}

// Counted records every write into stats.
func Counted(w io.Writer, stats *WriteStats) WriteFunc {
	return func(p []byte) (int, error) {
		n, err := w.Write(p)
		stats.mu.Lock()
		stats.Bytes += int64(n)
		stats.Writes++
		stats.Lines += int64(strings.Count(string(p[:n]), "\n"))
		if err != nil {
			stats.Errors++
		}
		stats.mu.Unlock()
		return n, err
	}
}

// ============================================================================
// Text Bindings
// ============================================================================

// StringerFunc produces text on demand and satisfies fmt.Stringer, so a
// pipeline of them can be handed straight to fmt.
//
// Example:
//
//	struck := Text("crap").Surround("<strike>", "</strike>")
type StringerFunc func() string

// Text lifts a constant string.
func Text(s string) StringerFunc {
	return func() string { return s }
}

// String implements fmt.Stringer.
func (f StringerFunc) String() string {
	return f()
}

// Join renders f followed by others, separated by sep.
func (f StringerFunc) Join(sep string, others ...StringerFunc) StringerFunc {
	return func() string {
		var b strings.Builder
		b.WriteString(f())
		for _, o := range others {
			b.WriteString(sep)
			b.WriteString(o())
		}
		return b.String()
	}
}

// Surround wraps the text in left and right, as a markup tag pair would.
func (f StringerFunc) Surround(left, right string) StringerFunc {
	return func() string {
		return left + f() + right
	}
}

// JoinStrings joins parts with sep.
func JoinStrings(sep string, parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	return Text(parts[0]).Join(sep, Map(parts[1:], Text)...).String()
}

// ============================================================================
// Exit Codes
// ============================================================================

// CodedError is an error carrying a process exit code.
type CodedError struct {
	err  error
	code int
}

// WithExitCode attaches code to err. A nil err stays nil.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("[%d] %s", e.code, e.err.Error())
}

// Unwrap returns the underlying error.
func (e *CodedError) Unwrap() error {
	return e.err
}

// Code returns the exit code.
func (e *CodedError) Code() int {
	return e.code
}
