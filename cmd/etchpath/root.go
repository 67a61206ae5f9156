package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	logLevelFlag string
	telemetryFlg string

	cfg               = DefaultConfig()
	logger            = slog.New(slog.DiscardHandler)
	shutdownTelemetry = func(context.Context) error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "etchpath",
	Short: "Draw images as one continuous line",
	Long: `etchpath extracts the edges of an image, links every edge pixel into a
single closed walk and emits JCode for pen plotters and etch-style toys.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			loaded.LogLevel = logLevelFlag
		}
		if cmd.Flags().Changed("telemetry") {
			loaded.Telemetry = telemetryFlg
		}
		if err = loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		runID := uuid.NewString()
		if logger, err = newLogger(os.Stderr, cfg.LogLevel, runID); err != nil {
			return err
		}
		shutdown, err := initTelemetry(cmd.Context(), cfg.Telemetry, runID)
		if err != nil {
			return err
		}
		shutdownTelemetry = shutdown

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		return shutdownTelemetry(context.WithoutCancel(cmd.Context()))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&telemetryFlg, "telemetry", "none", "OpenTelemetry exporter: none or stdout")

	rootCmd.AddCommand(traceCmd, sendCmd)
}

// newLogger returns a text logger on w tagged with runID.
func newLogger(w io.Writer, level, runID string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})

	return slog.New(h).With("run_id", runID), nil
}
