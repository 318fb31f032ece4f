// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-notes-summarizer/internal/config"
	"github.com/MKhiriev/go-notes-summarizer/internal/handler/grpc"
	"github.com/MKhiriev/go-notes-summarizer/internal/handler/http"
	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/service"
)

// Handlers groups the transport handlers enabled by the server
// configuration. A nil field means the transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the HTTP handler when an HTTP address is configured and
// the gRPC health handler when a gRPC address is configured. probe drives the
// gRPC health status.
func NewHandlers(services *service.Services, probe grpc.Probe, cfg config.Server, logger *logger.Logger, opts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		opts = append([]http.Option{http.WithRequestTimeout(cfg.RequestTimeout)}, opts...)
		handlers.HTTP = http.NewHandler(services, logger, opts...)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(probe, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
