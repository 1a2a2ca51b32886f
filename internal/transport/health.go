package transport

import (
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// TokenServiceName is the service name reported over grpc.health.v1.
const TokenServiceName = "blockinsight7000.tokens.v1"

// NewHealthServer reports the token service and the server as a whole as serving.
func NewHealthServer() *health.Server {
	s := health.NewServer()
	s.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.SetServingStatus(TokenServiceName, healthpb.HealthCheckResponse_SERVING)
	return s
}
