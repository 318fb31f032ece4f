// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics serves GET /metrics when set.
	metrics http.Handler

	// requestTimeout cancels a request context after the given duration.
	// Zero disables the timeout.
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures a [Handler].
type Option func(*Handler)

// WithMetricsHandler exposes h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(handler *Handler) {
		handler.metrics = h
	}
}

// WithRequestTimeout bounds every request to d.
func WithRequestTimeout(d time.Duration) Option {
	return func(handler *Handler) {
		handler.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
