package server

import (
	"net"

	"github.com/MKhiriev/go-users-registry/internal/config"
	myGRPC "github.com/MKhiriev/go-users-registry/internal/handler/grpc"
	"github.com/MKhiriev/go-users-registry/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		server:  s,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) Name() string { return "grpc" }

// Serve marks the health service SERVING once the listener is bound.
func (g *grpcServer) Serve() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.Serve").Str("address", g.address).Msg("gRPC server Listen")
		return err
	}

	g.handler.SetServing()
	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")

	if err = g.server.Serve(listener); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.Serve").Msg("gRPC server Serve")
		return err
	}
	return nil
}

// Shutdown reports NOT_SERVING before draining in-flight calls.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
