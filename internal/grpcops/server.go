// Package grpcops serves the operational gRPC surface: the standard health
// service, backed by a database ping, and server reflection.
package grpcops

import (
	"context"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service key reported alongside the overall "".
const ServiceName = "campusconnect.Campus"

type Server struct {
	grpc   *grpc.Server
	health *health.Server
	ping   func() error
}

// NewServer wires health and reflection. ping reports storage reachability.
func NewServer(ping func() error) *Server {
	s := &Server{
		grpc:   grpc.NewServer(grpc.UnaryInterceptor(loggingUnaryInterceptor)),
		health: health.NewServer(),
		ping:   ping,
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)
	return s
}

// Serve blocks; call Probe first so the initial status is published.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Probe pings storage once and publishes the result.
func (s *Server) Probe() healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.ping(); err != nil {
		log.Printf("Health probe failed: %v", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return status
}

// Watch re-probes every interval until ctx is done.
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Probe()
		}
	}
}

// GracefulStop marks every service NOT_SERVING, then drains.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func loggingUnaryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	duration := time.Since(start)
	if err != nil {
		log.Printf("✗ %s failed (%v): %v", info.FullMethod, duration, err)
	} else {
		log.Printf("✓ %s completed (%v)", info.FullMethod, duration)
	}
	return resp, err
}
