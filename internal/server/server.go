package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-ats-gateway/internal/config"
	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/MKhiriev/go-ats-gateway/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger

	mu   sync.Mutex
	addr string
}

// NewServer prepares a server for handler on cfg.HTTPAddress. ws are started
// with the server and stopped after it; ws may be nil.
func NewServer(handler http.Handler, ws *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || handler == nil {
		return nil, errNoServersAreCreated
	}
	if ws == nil {
		ws = workers.New()
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg.HTTPAddress, logger),
		workers:    ws,
		logger:     logger,
	}, nil
}

func (s *server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

func (s *server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.server.Addr, err)
	}

	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	s.workers.Start(ctx)

	served := make(chan struct{})
	go func() {
		defer close(served)
		s.logger.Info().Str("address", s.Addr()).Msg("Launching HTTP server")
		s.httpServer.serve(ln)
	}()

	<-ctx.Done()

	s.httpServer.shutdown()
	<-served
	s.workers.Stop()

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
