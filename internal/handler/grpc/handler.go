package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-catalog-gateway/internal/bootstrap"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
)

// ServiceName is the health-checked service name. The empty name reports
// the same status.
const ServiceName = "catalog-gateway"

// StateReporter reports the lifecycle state of the shared backend client.
type StateReporter interface {
	State() bootstrap.State
}

// Handler implements the standard gRPC health protocol on top of the
// backend client lifecycle.
//
// The client is created lazily, so an uninitialized or initializing client
// still reports SERVING. Only a failed bootstrap reports NOT_SERVING.
type Handler struct {
	healthpb.UnimplementedHealthServer

	reporter StateReporter

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reading state from reporter.
func NewHandler(reporter StateReporter, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		reporter: reporter,
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h)
}

func (h *Handler) Check(_ context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	state := h.reporter.State()
	h.logger.Debug().Str("state", state.String()).Msg("health check")

	return &healthpb.HealthCheckResponse{Status: servingStatus(state)}, nil
}

func servingStatus(s bootstrap.State) healthpb.HealthCheckResponse_ServingStatus {
	switch s {
	case bootstrap.StateFailed:
		return healthpb.HealthCheckResponse_NOT_SERVING
	case bootstrap.StateUninitialized, bootstrap.StateInitializing, bootstrap.StateReady:
		return healthpb.HealthCheckResponse_SERVING
	default:
		return healthpb.HealthCheckResponse_UNKNOWN
	}
}
