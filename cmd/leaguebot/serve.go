package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the league JSON API",
	Long: `Serves the league data over HTTP on SHEETCACHE_LISTEN_ADDR (default :8080).

Endpoints:
  GET  /standings
  GET  /stats/{hitting|pitching|fielding}
  GET  /schedule?team=
  GET  /teams/{team}/roster
  GET  /players/{name}
  GET  /leaders/{stat}?n=
  GET  /compare?a=&b=
  GET  /ranges/{range}
  POST /admin/invalidate
  GET  /admin/stats`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("closing app", zap.Error(err))
		}
	}()

	return a.server(logger).ListenAndServe(ctx, cfg.Server.ListenAddr)
}
