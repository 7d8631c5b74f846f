package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/ib-77/ropasync/internal/config"
	"github.com/ib-77/ropasync/internal/demo"
	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/core"
	"github.com/ib-77/ropasync/pkg/rop/logging"
	"github.com/ib-77/ropasync/pkg/rop/metrics"
	"github.com/ib-77/ropasync/pkg/rop/solo"
)

var (
	cfgPath     string
	isDebug     bool
	showMetrics bool
)

var rootCmd = &cobra.Command{
	Use:   "ropdemo",
	Short: "Lazy railway-oriented chain demo",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the quoting pipeline once",
	RunE:  runDemo,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (defaults are used when empty)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	runCmd.Flags().BoolVar(&showMetrics, "metrics", false, "print collected metrics after the run")
	rootCmd.AddCommand(runCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	if isDebug {
		level = slog.LevelDebug
	}
	logger := logging.NewConsole(os.Stderr, level)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	ctx = core.WithMetrics(ctx, metrics.New(reg))
	ctx = core.WithWorkerOptions(ctx, cfg.Workers)

	res := demo.Run(ctx, cfg, logging.Slog{Logger: logger, Level: slog.LevelInfo})

	return solo.Finally(ctx, res,
		func(_ context.Context, q demo.Quote) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d %s\n", q.Item, q.Region, q.Price, q.Tier)
			if showMetrics {
				return writeMetrics(cmd, reg)
			}
			return nil
		},
		func(ctx context.Context, err error) error {
			for _, e := range rop.GetErrors(err) {
				slog.ErrorContext(ctx, "Pipeline failed", "error", e)
			}
			return err
		},
		func(ctx context.Context, err error) error {
			slog.WarnContext(ctx, "Pipeline cancelled", "error", err)
			return err
		})
}

func writeMetrics(cmd *cobra.Command, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
