package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/octopus-msa/service02/internal/config"
	"github.com/octopus-msa/service02/internal/handler"
	"github.com/octopus-msa/service02/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the transport servers for handlers. The HTTP server
// serves on listener, which the caller has already bound (see [Listen]).
func NewServer(handlers *handler.Handlers, listener *Listener, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if handlers != nil && handlers.HTTP != nil && listener != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), listener, cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger
	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// Run serves until ctx is cancelled or the HTTP server fails, then shuts the
// server down.
func (s *server) Run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersAreCreated
	}

	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.listener.Addr().String()).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		if err := <-serveErr; err != nil {
			return err
		}
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err := <-serveErr:
		s.Shutdown()
		return errors.Join(errServerStopped, err)
	}
}
