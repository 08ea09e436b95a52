package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/handler"
	"github.com/MKhiriev/go-users-registry/internal/logger"
)

// transport is one listening server owned by [server].
type transport interface {
	Name() string
	Serve() error
	Shutdown()
}

type server struct {
	transports []transport
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or a transport
// fails, then shuts every started transport down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	for _, t := range s.transports {
		t.Shutdown()
	}
}

// run serves every transport until ctx is done or one of them stops with an
// error. Either way all transports are shut down before it returns.
func (s *server) run(ctx context.Context) error {
	if len(s.transports) == 0 {
		return errNoServersToRun
	}

	failed := make(chan error, len(s.transports))
	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.Name()).Msg("launching server")
		go func() {
			if err := t.Serve(); err != nil {
				failed <- fmt.Errorf("%s: %w", t.Name(), err)
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-failed:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
