package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/service"
)

func TestHandler_HealthLifecycle(t *testing.T) {
	ctx := context.Background()
	h := NewHandler(&service.Services{}, logger.Nop())

	st, err := h.Check(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, st)

	st, err = h.Check(ctx, VaultServiceName)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, st)

	h.Shutdown()

	st, err = h.Check(ctx, VaultServiceName)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, st)
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	_, err := h.Check(context.Background(), "no.such.Service")
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
