package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polymaze/internal/logging"
	"github.com/katalvlaran/polymaze/internal/observability"
)

// version is set at build time via -ldflags.
var version = "dev"

// app is the state shared by every subcommand of one invocation.
type app struct {
	log      logging.Logger
	shutdown func(context.Context) error

	logLevel  string
	logFormat string
	trace     bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Noop()}

	root := &cobra.Command{
		Use:   "polymaze",
		Short: "Procedural mazes on the faces of Platonic solids",
		Long: "polymaze carves solvable mazes over subdivided polyhedra: a spanning-tree\n" +
			"backbone, extra loops, one-way corridors and backlinks, verified pruning\n" +
			"and pass-through culling, all reproducible from (shape, N, params, seed).",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			observability.ShutdownWithTimeout(cmd.Context(), a.shutdown, a.log)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	f.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	f.BoolVar(&a.trace, "trace", false, "print OpenTelemetry spans to stderr")

	root.AddCommand(
		newGenerateCmd(a),
		newLevelsCmd(a),
		newVerifyCmd(a),
		newMetricsCmd(a),
	)

	return root
}

// setup builds the logger and, with --trace, the tracer provider. The
// logger rides on the command context so every generation picks it up.
//
// POLYMAZE_LOG_* variables replace the flag defaults but not explicit flags;
// POLYMAZE_TRACING_* variables enable tracing without the flag.
func (a *app) setup(cmd *cobra.Command) error {
	lc := logging.ConfigFromEnv(logging.Config{Level: a.logLevel, Format: a.logFormat})
	if cmd.Flags().Changed("log-level") {
		lc.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		lc.Format = a.logFormat
	}
	lc.Output = cmd.ErrOrStderr()
	a.log = logging.New(lc)
	cmd.SetContext(logging.ContextWithLogger(cmd.Context(), a.log))

	cfg := observability.TracingConfigFromEnv()
	cfg.Enabled = cfg.Enabled || a.trace
	cfg.Output = cmd.ErrOrStderr()
	shutdown, err := observability.InitTracing(cmd.Context(), cfg, a.log)
	if err != nil {
		return err
	}
	a.shutdown = shutdown

	return nil
}
