package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tradekit/roadmap/api"
	"github.com/tradekit/roadmap/config"
	"github.com/tradekit/roadmap/pkg/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection API over HTTP",
	Long: `Serve runs the JSON HTTP API used by the web frontend.

Endpoints:
  POST /api/simulate - run a projection
  GET  /             - service banner
  GET  /healthz      - liveness probe
  GET  /metrics      - Prometheus metrics

A .env file in the working directory is loaded if present; ROADMAP_ADDR and
ROADMAP_LOG_LEVEL override the config file.

Example:
  roadmap serve --addr :8000 --config roadmap.yaml`,
	RunE: runServe,
}

var (
	serveConfigPath string
	serveAddr       string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Missing .env is fine; only explicit settings matter.
	_ = godotenv.Load()

	cfg := config.Default()
	if serveConfigPath != "" {
		loaded, err := config.LoadFromFile(serveConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if addr := os.Getenv("ROADMAP_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if level := os.Getenv("ROADMAP_LOG_LEVEL"); level != "" {
		cfg.Server.LogLevel = level
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	log := logging.New(os.Stderr, cfg.Server.LogLevel)
	srv := api.NewServer(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
