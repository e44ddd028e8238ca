// Package server exposes the optional debug HTTP endpoints. It is never
// started unless monitoring is enabled in config; the worker's only required
// interfaces are its stdio streams.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quarklabs/taskline/internal/monitoring/health"
	"github.com/quarklabs/taskline/pkg/logger"
)

type Server struct {
	httpServer *http.Server
	checker    *health.Checker
}

func NewServer(addr string, checker *health.Checker, gatherer prometheus.Gatherer) *Server {
	s := &Server{checker: checker}

	router := mux.NewRouter()
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) Start() error {
	log := logger.WithComponent("server")
	log.Info().Str("addr", s.httpServer.Addr).Msg("Starting debug HTTP server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	log := logger.WithComponent("server")
	log.Info().Msg("Shutting down debug HTTP server")

	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	log := logger.WithComponent("server")

	w.Header().Set("Content-Type", "application/json")
	if !s.checker.Healthy() {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(s.checker.Snapshot()); err != nil {
		log.Error().Err(err).Msg("Failed to encode health snapshot")
	}
}
