package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/replenish/internal/config"
	"github.com/JonMunkholm/replenish/internal/core"
	"github.com/JonMunkholm/replenish/internal/source"
	"github.com/JonMunkholm/replenish/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the report over HTTP",
		Long: `Start an HTTP server that runs the report on every request.

Routes:
  GET /healthz          liveness check
  GET /api/report       report as JSON
  GET /api/report.csv   items as a CSV download (204 when none)

Example: replenish serve --port 9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var overrides []config.Override
			if cmd.Flags().Changed("port") {
				overrides = append(overrides, func(c *config.Config) { c.Server.Port = port })
			}

			cfg, err := loadConfig(overrides...)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default: SERVER_PORT)")

	return cmd
}

// runServe blocks until ctx is cancelled, then shuts the server down.
func runServe(ctx context.Context, cfg *config.Config) error {
	src, err := source.New(ctx, cfg)
	if err != nil {
		return err
	}

	service := core.NewService(src, cfg.Report.MaxHeaderRows)
	server := web.NewServer(service, cfg.Server)

	slog.Info("configuration loaded",
		"addr", cfg.Server.Addr(),
		"local_file", cfg.UseLocalFile(),
		"max_header_rows", cfg.Report.MaxHeaderRows,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	slog.Info("server stopped")
	return nil
}
