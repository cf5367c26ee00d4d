package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/telemetry"
	"github.com/katalvlaran/pathgrid/tui"
	"github.com/katalvlaran/pathgrid/visualizer"
)

// Version is overridden at build time with -ldflags "-X ...commands.Version=v1.2.3".
var Version = "dev"

// NewRootCmd builds the pathgrid command tree.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "pathgrid",
		Short: "Interactive grid shortest-path visualizer",
		Long: `pathgrid lays out a grid of nodes, lets you pick a start and an end node,
drag nodes around, and replays the search step by step.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(viper.New(), cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}

			return runInteractive(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.pathgrid.yaml)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newSolveCmd(&cfgFile))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "pathgrid:", err)
		stop()
		os.Exit(1)
	}
}

func runInteractive(ctx context.Context, cfg config.Config) error {
	// 1) Logging and tracing.
	logger, closer, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	shutdown, err := telemetry.Init(ctx, Version, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	// 2) Board and session.
	alg, err := cfg.SearchAlgorithm()
	if err != nil {
		return err
	}
	layout := cfg.Layout()
	g, _, err := gridgraph.Build(layout)
	if err != nil {
		return err
	}
	sess := visualizer.New(g,
		visualizer.WithStepDelay(cfg.StepDelay),
		visualizer.WithLogger(logger),
		visualizer.WithTracer(telemetry.Tracer("pathgrid/visualizer")),
	)
	logger.Info("session started",
		"rows", layout.Rows,
		"cols", layout.Cols,
		"algorithm", cfg.Algorithm,
		"step_delay", cfg.StepDelay,
	)

	// 3) Terminal UI.
	return tui.Run(ctx, tui.New(ctx, sess, layout, alg, cfg.Nudge))
}
