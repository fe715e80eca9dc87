package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Pure-Company/purekata/internal/ctxlog"
	"github.com/Pure-Company/purekata/internal/exercise"
	"github.com/Pure-Company/purekata/internal/server"
)

func (a *app) listCmd() *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exercises",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			exs := a.registry.List(exercise.Topic(topic))
			if len(exs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no exercises found)")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTOPIC\tSUMMARY")
			for _, ex := range exs {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", ex.Name, ex.Topic, ex.Summary)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "Only list one topic: introduction|enumerables|methods|strings")
	return cmd
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <exercise>",
		Short: "Run an exercise with stdin as its input",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := exercise.NewRunner(a.registry)
			if err := runner.Run(cmd.Context(), args[0], cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return runError(err)
			}
			return nil
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve exercises over HTTP",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Serve
			if addr != "" {
				cfg.Addr = addr
			}

			gin.SetMode(gin.ReleaseMode)
			runner := exercise.NewRunner(a.registry, exercise.WithRunTimeout(cfg.Timeout))
			srv := server.New(runner, cfg, ctxlog.FromContext(cmd.Context()))
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}
