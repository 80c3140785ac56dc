package server

import (
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	myGRPC "github.com/MKhiriev/go-catalog-gateway/internal/handler/grpc"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
)

type grpcServer struct {
	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC health server listening")
	if err := g.server.Serve(lis); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
