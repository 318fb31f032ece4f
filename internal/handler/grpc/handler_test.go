// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
)

type fakeProbe struct {
	running atomic.Bool
}

func (p *fakeProbe) Running() bool {
	return p.running.Load()
}

func status(t *testing.T, h *Handler) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler_StartsNotServing(t *testing.T) {
	probe := &fakeProbe{}
	probe.running.Store(true)

	h := NewHandler(probe, logger.Nop())

	assert.Equal(t, defaultPollInterval, h.pollInterval)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h))
}

func TestWithPollInterval_IgnoresNonPositive(t *testing.T) {
	h := NewHandler(&fakeProbe{}, logger.Nop(), WithPollInterval(0))
	assert.Equal(t, defaultPollInterval, h.pollInterval)

	h = NewHandler(&fakeProbe{}, logger.Nop(), WithPollInterval(5*time.Millisecond))
	assert.Equal(t, 5*time.Millisecond, h.pollInterval)
}

func TestHandler_Run_FollowsProbe(t *testing.T) {
	probe := &fakeProbe{}
	h := NewHandler(probe, logger.Nop(), WithPollInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	probe.running.Store(true)
	assert.Eventually(t, func() bool {
		return status(t, h) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	probe.running.Store(false)
	assert.Eventually(t, func() bool {
		return status(t, h) == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)

	probe.running.Store(true)
	cancel()
	require.NoError(t, <-done)

	// shutdown is sticky even though the probe reports running
	h.update()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h))
}

func TestHandler_NilProbe(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	h.update()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h))
}

func TestHandler_Register_ServesOverGRPC(t *testing.T) {
	probe := &fakeProbe{}
	probe.running.Store(true)
	h := NewHandler(probe, logger.Nop())
	h.update()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	h.Shutdown()
	resp, err = healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
