package cli

import (
	"context"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/quarklabs/taskline/internal/core/config"
	"github.com/quarklabs/taskline/internal/execution/command"
	"github.com/quarklabs/taskline/internal/monitoring/health"
	"github.com/quarklabs/taskline/internal/monitoring/metrics"
	"github.com/quarklabs/taskline/internal/server"
	"github.com/quarklabs/taskline/internal/worker"
	"github.com/quarklabs/taskline/pkg/logger"
)

// RunWorker wires the executor loop to the process streams and runs it until
// stdin is exhausted.
func RunWorker() {
	log := logger.WithComponent("cli")

	cfg, err := config.GetConfigManager().GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	checker := health.NewChecker()

	var srv *server.Server
	if cfg.Monitoring.Enabled {
		srv = server.NewServer(cfg.Monitoring.Addr, checker, registry)
		go func() {
			if err := srv.Start(); err != nil {
				log.Error().Err(err).Msg("Debug server failed")
			}
		}()
	}

	svc := worker.NewService(command.NewExecutor(), collector, checker, cfg.Worker.MaxLineBytes)
	runErr := svc.Run(context.Background(), os.Stdin, os.Stdout)

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to stop debug server")
		}
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Worker terminated")
	}
}
