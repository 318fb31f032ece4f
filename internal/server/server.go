// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-notes-summarizer/internal/config"
	"github.com/MKhiriev/go-notes-summarizer/internal/handler"
	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
)

// ShutdownTimeout bounds how long transports may take to drain.
const ShutdownTimeout = 10 * time.Second

// transport is a single listening server.
type transport interface {
	name() string
	address() string
	serve(l net.Listener) error
	shutdown(ctx context.Context) error
}

type server struct {
	transports []transport
	logger     *logger.Logger
}

// NewServer creates a server for every handler present in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// SignalContext returns a context cancelled on SIGTERM, SIGINT or SIGQUIT.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
}

func (s *server) RunServer(ctx context.Context) error {
	listeners := make([]net.Listener, 0, len(s.transports))
	for _, t := range s.transports {
		l, err := net.Listen("tcp", t.address())
		if err != nil {
			for _, opened := range listeners {
				opened.Close()
			}
			return fmt.Errorf("%w %s (%s): %w", ErrListen, t.address(), t.name(), err)
		}
		listeners = append(listeners, l)
	}

	return s.serve(ctx, listeners)
}

// serve runs each transport on its listener until ctx is cancelled or one
// of them fails, then shuts all of them down.
func (s *server) serve(ctx context.Context, listeners []net.Listener) error {
	serveErrs := make(chan error, len(s.transports))
	for i, t := range s.transports {
		s.logger.Info().Str("transport", t.name()).Str("address", listeners[i].Addr().String()).Msg("launching server")
		go func(t transport, l net.Listener) {
			if err := t.serve(l); err != nil {
				serveErrs <- fmt.Errorf("%w (%s): %w", ErrServe, t.name(), err)
			}
		}(t, listeners[i])
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErrs:
		s.logger.Err(runErr).Msg("server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}
	if runErr == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return runErr
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%w (%s): %w", ErrShutdown, t.name(), err))
		}
	}
	return errors.Join(errs...)
}
