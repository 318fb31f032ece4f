// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
)

const defaultPollInterval = time.Second

// Probe reports whether the note worker is alive.
// [workers.Supervisor] satisfies it.
type Probe interface {
	Running() bool
}

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1.Health service. The overall status
// ("" service name) follows the probe: SERVING while the worker supervisor is
// running, NOT_SERVING otherwise and permanently once shutdown begins.
type Handler struct {
	health *health.Server
	probe  Probe

	// pollInterval is how often the probe is sampled by Run.
	pollInterval time.Duration

	logger *logger.Logger
}

// Option configures a [Handler].
type Option func(*Handler)

// WithPollInterval overrides how often the probe is sampled.
func WithPollInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.pollInterval = d
		}
	}
}

// NewHandler constructs a [Handler] reporting the state of probe.
// The initial status is NOT_SERVING until Run samples the probe.
func NewHandler(probe Probe, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		health:       health.NewServer(),
		probe:        probe,
		pollInterval: defaultPollInterval,
		logger:       logger.Component("grpc-health"),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to srv.
func (h *Handler) Register(srv grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(srv, h.health)
}

// Run samples the probe until ctx is cancelled, then marks the service
// NOT_SERVING. It implements [workers.Worker].
func (h *Handler) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	h.update()
	for {
		select {
		case <-ctx.Done():
			h.Shutdown()
			return nil
		case <-ticker.C:
			h.update()
		}
	}
}

// Shutdown sets every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Msg("health status set to NOT_SERVING")
}

func (h *Handler) update() {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.probe != nil && h.probe.Running() {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", status)
}
