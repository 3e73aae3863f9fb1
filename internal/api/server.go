// Package api serves quiz generation, competition papers, marking and
// coach tips over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pms-safya/abacus/internal/competition"
	"github.com/pms-safya/abacus/internal/config"
	"github.com/pms-safya/abacus/internal/tips"
)

// Deps wires the server's collaborators.
type Deps struct {
	Config config.ServerConfig

	// Quiz fills settings a request leaves out.
	Quiz competition.Settings

	// Tips may be nil; tip requests then get the fallback tip.
	Tips *tips.Service

	Logger *zap.Logger

	// Registry receives the server's metrics. Nil creates a private one.
	Registry *prometheus.Registry
}

// Server is the abacus HTTP API.
type Server struct {
	cfg     config.ServerConfig
	quiz    competition.Settings
	tips    *tips.Service
	logger  *zap.Logger
	metrics *Metrics
	handler http.Handler
}

// New builds a server and its routes.
func New(d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	s := &Server{
		cfg:     d.Config,
		quiz:    d.Quiz,
		tips:    d.Tips,
		logger:  logger.Named("api"),
		metrics: NewMetrics(reg),
	}
	s.handler = s.routes(reg)
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the server's collectors, which also observe every
// generator the server builds.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()
	s.logger.Info("listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		s.logger.Info("shutting down")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
