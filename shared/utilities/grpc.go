package utilities

import (
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// RegisterHealthServer registers the gRPC health check service and reports SERVING for
// the overall server and for service.
func RegisterHealthServer(grpcServer *grpc.Server, service string) *health.Server {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	return healthServer
}

// HealthProbe is a standalone gRPC server that only answers health checks, for
// orchestrators that probe over gRPC.
type HealthProbe struct {
	server *grpc.Server
	health *health.Server
	logger *zerolog.Logger
}

func NewHealthProbe(logger *zerolog.Logger, service string) *HealthProbe {
	server := grpc.NewServer()

	return &HealthProbe{
		server: server,
		health: RegisterHealthServer(server, service),
		logger: logger,
	}
}

// Serve blocks until the listener fails or Stop is called.
func (p *HealthProbe) Serve(lis net.Listener) error {
	p.logger.Info().Str("addr", lis.Addr().String()).Msg("gRPC health probe listening")
	return p.server.Serve(lis)
}

// Stop flips every status to NOT_SERVING and stops the server gracefully.
func (p *HealthProbe) Stop() {
	p.health.Shutdown()
	p.server.GracefulStop()
}
