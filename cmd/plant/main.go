package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"plant/internal/bootstrap"
	"plant/internal/platform/config"
	apperrors "plant/internal/platform/errors"
	"plant/internal/platform/logging"
)

type rootOptions struct {
	dataDir    string
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "plant",
		Short:         "Hydration tracker with a growing plant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", config.DefaultDataDir(), "directory holding plant.db and config.yaml")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <data-dir>/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newStatusCmd(opts))
	root.AddCommand(newLogCmd(opts))
	root.AddCommand(newResetCmd(opts))
	root.AddCommand(newGoalCmd(opts))
	root.AddCommand(newUnitCmd(opts))
	root.AddCommand(newGlassCmd(opts))
	root.AddCommand(newFormatCmd(opts))
	root.AddCommand(newGrowCmd(opts))
	root.AddCommand(newSwayCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newWidgetCmd(opts))
	root.AddCommand(newServeCmd(opts))
	return root
}

// loadApp resolves config, builds the logger and wires every module. The
// returned context carries the logger.
func loadApp(cmd *cobra.Command, opts *rootOptions) (context.Context, *bootstrap.App, error) {
	if err := os.MkdirAll(opts.dataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	cfg, err := config.Load(opts.dataDir, opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	level := logging.ParseLevel(cfg.LogLevel)
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := logging.New(cmd.ErrOrStderr(), level)
	ctx := logging.WithLogger(cmd.Context(), logger)
	logger.Debug("config loaded", "data_dir", cfg.DataDir, "db", cfg.DBPath)

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return ctx, app, nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the plant terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The TUI owns the terminal; keep log lines out of the alt screen.
			opts.verbose = false
			cmd.SetErr(io.Discard)
			_, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's intake against the goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			state, err := app.HydrationCLI.Status(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, state.Headline)
			_, _ = fmt.Fprintf(out, "progress\t%.0f%%\n", state.ProgressRatio*100)
			_, _ = fmt.Fprintf(out, "glass\t%s\n", state.GlassText)
			_, _ = fmt.Fprintf(out, "unit\t%s\n", state.Unit)
			return nil
		},
	}
}

func newLogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Log one glass of water",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.HydrationCLI.LogGlass(ctx)
			if err != nil {
				return err
			}
			if !out.Logged {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal already reached: %s\n", out.State.Headline)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %s: %s\n", out.State.GlassText, out.State.Headline)
			return nil
		},
	}
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset today's intake to zero",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("%w: reset discards today's intake; pass --yes to confirm", apperrors.ErrInvalidInput)
			}
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			state, err := app.HydrationCLI.Reset(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reset: %s\n", state.Headline)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func newGoalCmd(opts *rootOptions) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Daily goal commands"}
	goal.AddCommand(&cobra.Command{
		Use:   "set <ml>",
		Short: "Set the daily goal in millilitres",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ml, err := parseML(args[0])
			if err != nil {
				return err
			}
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			state, err := app.HydrationCLI.SetGoal(ctx, ml)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal set: %s\n", state.GoalText)
			return nil
		},
	})
	return goal
}

func newUnitCmd(opts *rootOptions) *cobra.Command {
	unit := &cobra.Command{Use: "unit", Short: "Display unit commands"}
	unit.AddCommand(&cobra.Command{
		Use:   "set <oz|L>",
		Short: "Choose the display unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			state, err := app.HydrationCLI.SetUnit(ctx, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "unit set: %s\n", state.Headline)
			return nil
		},
	})
	return unit
}

func newGlassCmd(opts *rootOptions) *cobra.Command {
	glass := &cobra.Command{Use: "glass", Short: "Glass size commands"}
	glass.AddCommand(&cobra.Command{
		Use:   "set <ml>",
		Short: "Set the glass size in millilitres",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ml, err := parseML(args[0])
			if err != nil {
				return err
			}
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			state, err := app.HydrationCLI.SetGlassSize(ctx, ml)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "glass set: %s\n", state.GlassText)
			return nil
		},
	})
	return glass
}

func newFormatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format <ml>",
		Short: "Format a volume in the active unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ml, err := parseML(args[0])
			if err != nil {
				return err
			}
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			text, err := app.HydrationCLI.Format(ctx, ml)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newGrowCmd(opts *rootOptions) *cobra.Command {
	var ratio float64
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow the plant to a progress ratio and print the animation data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			if !cmd.Flags().Changed("ratio") {
				state, err := app.HydrationCLI.Status(ctx)
				if err != nil {
					return err
				}
				ratio = state.ProgressRatio
			}
			out, err := app.GrowthCLI.Grow(ctx, ratio)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().Float64Var(&ratio, "ratio", 0, "progress ratio (default: current intake / goal)")
	return cmd
}

func newSwayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sway",
		Short: "Restart the idle sway and print one descriptor per leaf",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.GrowthCLI.Sway(ctx)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var markdown bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize today's progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			if markdown {
				note, err := app.StatsCLI.Markdown(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), note)
				return nil
			}
			s, err := app.StatsCLI.Summary(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, s.Line)
			_, _ = fmt.Fprintf(out, "percent\t%.0f%%\n", s.Percent)
			_, _ = fmt.Fprintf(out, "remaining\t%.0f ml\n", s.RemainingML)
			_, _ = fmt.Fprintf(out, "glasses\t%d\n", s.GlassesRemaining)
			return nil
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "print the summary as a markdown note")
	return cmd
}

func newWidgetCmd(opts *rootOptions) *cobra.Command {
	widget := &cobra.Command{Use: "widget", Short: "Companion widget commands"}

	widget.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List installed widget plugins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			widgets, err := app.WidgetCLI.List(ctx)
			if err != nil {
				return err
			}
			if len(widgets) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no widgets")
				return nil
			}
			for _, w := range widgets {
				state := "disabled"
				if w.Enabled {
					state = "enabled"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", w.Name, w.Version, state, w.Binary)
			}
			return nil
		},
	})

	widget.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check widget checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			results, err := app.WidgetCLI.Doctor(ctx)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no widgets")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tchecksum=%t\tbinary=%t\tlifecycle=%t\t%s\n",
					r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK, r.Error)
			}
			return nil
		},
	})

	widget.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the last snapshot published to widgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			snapshot, err := app.WidgetCLI.Show(ctx)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), snapshot)
		},
	})
	return widget
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the widget surface and metrics over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			if addr == "" {
				addr = app.Config.Server.Addr
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return bootstrap.Serve(ctx, app, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

func parseML(raw string) (float64, error) {
	ml, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a volume in ml", apperrors.ErrInvalidInput, raw)
	}
	return ml, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
