package exercise

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/Pure-Company/purekata/internal/ctxlog"
)

// RunFunc adapts one kata to the stdin/stdout convention.
type RunFunc func(ctx context.Context, in *Input, out io.Writer) error

// Run calls f.
func (f RunFunc) Run(ctx context.Context, in *Input, out io.Writer) error {
	return f(ctx, in, out)
}

// Then runs next after f succeeds, on the same input and output.
func (f RunFunc) Then(next RunFunc) RunFunc {
	return func(ctx context.Context, in *Input, out io.Writer) error {
		if err := f(ctx, in, out); err != nil {
			return err
		}
		return next(ctx, in, out)
	}
}

// Recover turns a panic into an error carrying the stack.
func (f RunFunc) Recover() RunFunc {
	return func(ctx context.Context, in *Input, out io.Writer) (err error) {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.FromContext(ctx).Error("exercise.panic",
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return f(ctx, in, out)
	}
}

// WithTimeout gives up after timeout or when ctx ends. Output is buffered
// and only reaches out when f finishes in time.
func (f RunFunc) WithTimeout(timeout time.Duration) RunFunc {
	return func(ctx context.Context, in *Input, out io.Writer) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		var buf bytes.Buffer
		done := make(chan error, 1)
		go func() {
			done <- f(ctx, in, &buf)
		}()

		select {
		case err := <-done:
			if cerr := ctx.Err(); cerr != nil {
				return fmt.Errorf("exercise did not finish: %w", cerr)
			}
			if _, werr := buf.WriteTo(out); werr != nil && err == nil {
				err = werr
			}
			return err
		case <-ctx.Done():
			return fmt.Errorf("exercise did not finish: %w", ctx.Err())
		}
	}
}

// Print returns a RunFunc that writes lines and reads nothing.
func Print(lines ...string) RunFunc {
	return func(_ context.Context, _ *Input, out io.Writer) error {
		for _, l := range lines {
			if _, err := fmt.Fprintln(out, l); err != nil {
				return err
			}
		}
		return nil
	}
}
