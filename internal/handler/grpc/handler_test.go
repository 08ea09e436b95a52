package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/service"
	"github.com/MKhiriev/go-users-registry/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLoggingInterceptor))
	h.Register(s)

	go func() { _ = s.Serve(listener) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, svc string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: svc})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_HealthLifecycle(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := startHealthServer(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))

	h.SetServing()
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ServiceName))

	h.Shutdown()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceName))

	// updates after shutdown are ignored
	h.SetServing()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := startHealthServer(t, h)

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "nope"})

	assert.Error(t, err)
}

func TestUnaryLoggingInterceptor_TraceID(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	info := &grpc.UnaryServerInfo{FullMethod: "/test/Method"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDMetadataKey, "trace-7"))
	var seen string
	_, err := h.UnaryLoggingInterceptor(ctx, nil, info, func(ctx context.Context, _ any) (any, error) {
		seen = utils.GetTraceIDFromContext(ctx)
		return nil, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "trace-7", seen)

	_, err = h.UnaryLoggingInterceptor(context.Background(), nil, info, func(ctx context.Context, _ any) (any, error) {
		seen = utils.GetTraceIDFromContext(ctx)
		return nil, nil
	})

	require.NoError(t, err)
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "trace-7", seen)
}
