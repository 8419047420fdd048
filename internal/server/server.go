package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/IvanovPete/test-backend/internal/config"
	"github.com/IvanovPete/test-backend/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	// addr is set once the listener is bound.
	addr chan net.Addr

	logger *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handler, cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		addr:            make(chan net.Addr, 1),
		logger:          logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}
	s.addr <- listener.Addr()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(listener)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.shutdownTimeout)
		defer cancel()
	}

	if err = s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
