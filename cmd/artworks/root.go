package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/artworks/internal/catalog"
	"github.com/jask/artworks/internal/config"
	"github.com/jask/artworks/internal/logging"
	"github.com/jask/artworks/internal/tui"
)

type options struct {
	configPath  string
	logFile     string
	logLevel    string
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "artworks",
		Short: "Browse the artwork catalog page by page",
		Long: `artworks shows the public artwork catalog as a paginated table,
ten records per page, with checkbox row selection.

Diagnostics are written to a log file because the table owns the terminal.`,
		Example: `  # Browse with defaults
  artworks

  # Point at another catalog and expose metrics
  ARTWORKS_CATALOG_BASE_URL=http://localhost:8080/api/v1 artworks --metrics-addr 127.0.0.1:9102`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.Flags().Changed)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "diagnostic log path (default $XDG_STATE_HOME/artworks/artworks.log)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve prometheus metrics on host:port")

	return cmd
}

func run(ctx context.Context, opts options, changed func(string) bool) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(&cfg, opts, changed)

	logPath := cfg.Log.File
	if logPath == "" {
		logPath = logging.DefaultFile()
	}
	logFile, err := logging.OpenFile(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.Log.Level),
		Pretty: cfg.Log.Pretty,
		Output: logFile,
	})
	logger := logging.NewLogger("main")
	logger.Info().Str("base_url", cfg.Catalog.BaseURL).Str("version", version).Msg("Starting artworks")

	client, err := catalog.New(catalog.Config{
		BaseURL:   cfg.Catalog.BaseURL,
		UserAgent: cfg.Catalog.UserAgent,
		Timeout:   cfg.Catalog.Timeout,
	})
	if err != nil {
		return fmt.Errorf("catalog client: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Metrics.Addr != "" {
		stop := serveMetrics(cfg.Metrics.Addr, logger)
		defer stop()
	}

	p := tea.NewProgram(tui.New(ctx, cfg.UI, client), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run table view: %w", err)
	}
	logger.Info().Msg("Stopped artworks")
	return nil
}

// applyFlags lets explicitly set flags win over file and env configuration.
func applyFlags(cfg *config.Config, opts options, changed func(string) bool) {
	if changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if changed("metrics-addr") {
		cfg.Metrics.Addr = opts.metricsAddr
	}
}

func serveMetrics(addr string, logger zerolog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info().Str("addr", addr).Msg("Serving metrics")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", addr).Msg("Metrics server failed")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
}
