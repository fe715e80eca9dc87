package exercise

import (
	"context"
	"errors"
	"io"
	"time"

	pk "github.com/Pure-Company/purekata"
	"github.com/Pure-Company/purekata/internal/ctxlog"
)

// Runner executes registered exercises against a reader and a writer.
type Runner struct {
	registry *Registry
	timeout  time.Duration
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunTimeout bounds every run. Zero means no limit.
func WithRunTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.timeout = d
	}
}

// NewRunner runs exercises from registry.
func NewRunner(registry *Registry, opts ...RunnerOption) *Runner {
	r := &Runner{registry: registry}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry exposes the catalog the runner serves.
func (r *Runner) Registry() *Registry {
	return r.registry
}

// Run looks up name, feeds it stdin and writes its result to stdout.
// Failures come back as *OpError.
func (r *Runner) Run(ctx context.Context, name string, stdin io.Reader, stdout io.Writer) error {
	logger := ctxlog.FromContext(ctx).With("exercise", name)
	ctx = ctxlog.WithLogger(ctx, logger)

	ex, err := r.registry.Lookup(name)
	if err != nil {
		logger.Warn("exercise.unknown")
		return err
	}

	var inBytes int64
	in := NewInput(pk.ReadFunc(stdin.Read).Tap(func(chunk []byte, _ error) {
		inBytes += int64(len(chunk))
	}))
	var stats pk.WriteStats
	out := pk.Counted(stdout, &stats)

	logger.Debug("exercise.started", "topic", ex.Topic)
	start := time.Now()
	run := ex.Run.Recover()
	if r.timeout > 0 {
		run = run.WithTimeout(r.timeout)
	}
	err = run.Run(ctx, in, out)
	outBytes, _, outLines, _ := stats.Snapshot()

	if err != nil {
		kind := KindExecution
		var ie *InputError
		if errors.As(err, &ie) {
			kind = KindInvalidInput
		}
		logger.Warn("exercise.failed", "kind", kind, "error", err)
		return &OpError{Op: "exercise.run", Kind: kind, Exercise: name, Err: err}
	}

	logger.Info("exercise.completed",
		"duration_ms", time.Since(start).Milliseconds(),
		"input_bytes", inBytes,
		"output_bytes", outBytes,
		"output_lines", outLines,
	)
	return nil
}
