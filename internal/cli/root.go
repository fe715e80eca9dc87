// Package cli wires the exercise runner into the purekata command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	pk "github.com/Pure-Company/purekata"
	"github.com/Pure-Company/purekata/internal/config"
	"github.com/Pure-Company/purekata/internal/ctxlog"
	"github.com/Pure-Company/purekata/internal/exercise"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd(exercise.Default()).ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	return ExitCode(err)
}

// ExitCode picks the exit code carried by err, defaulting to ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var coded *pk.CodedError
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return ExitError
}

type app struct {
	registry   *exercise.Registry
	cfg        config.Config
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCmd builds the command tree over registry.
func NewRootCmd(registry *exercise.Registry) *cobra.Command {
	a := &app{registry: registry}

	cmd := &cobra.Command{
		Use:           "purekata",
		Short:         "Run tutorial katas against stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return pk.WithExitCode(err, ExitUsage)
	})

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file (optional)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "text|json (overrides config)")

	cmd.AddCommand(a.listCmd(), a.runCmd(), a.serveCmd())
	return cmd
}

// setup loads config, applies flag overrides and puts the logger on the
// command context. Logs go to stderr; stdout belongs to exercise output.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return pk.WithExitCode(err, ExitUsage)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return pk.WithExitCode(err, ExitUsage)
	}
	a.cfg = cfg

	logger := ctxlog.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, logger))
	return nil
}

// runError maps runner failures to exit codes.
func runError(err error) error {
	if exercise.IsKind(err, exercise.KindInvalidInput) || exercise.IsKind(err, exercise.KindUnknownExercise) {
		return pk.WithExitCode(err, ExitUsage)
	}
	return pk.WithExitCode(err, ExitError)
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return pk.WithExitCode(cobra.ExactArgs(n)(cmd, args), ExitUsage)
	}
}
