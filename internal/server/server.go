// Package server exposes the decoder over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/node"
	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/danmuck/bitsctl/internal/solver"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// bodySlack covers JSON framing around the hex payload.
const bodySlack = 1024

// Kind identifies decoder nodes in logs and /health.
const Kind = "decoder"

var _ node.Node = (*Server)(nil)

type Server struct {
	Node     string
	Addr     string
	Appeared time.Time

	router          *gin.Engine
	solver          *solver.Solver
	logger          zerolog.Logger
	maxBody         int64
	shutdownTimeout time.Duration
}

func New(cfg config.Config, s *solver.Solver, logger zerolog.Logger) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestID())
	r.Use(observability.RequestLogger(logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Server.Node))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	srv := &Server{
		Node:            cfg.Server.Node,
		Addr:            cfg.Server.Addr,
		Appeared:        time.Now(),
		router:          r,
		solver:          s,
		logger:          logger,
		maxBody:         int64(cfg.MaxInputLen) + bodySlack,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	srv.registerRoutes()
	return srv
}

func (s *Server) NodeID() string {
	return s.Node
}

func (s *Server) Kind() string {
	return Kind
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("node", s.Node).Str("addr", s.Addr).Msg("serving")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info().Str("node", s.Node).Msg("stopped")
		return nil
	}
}
