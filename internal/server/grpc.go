// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-notes-summarizer/internal/config"
	myGRPC "github.com/MKhiriev/go-notes-summarizer/internal/handler/grpc"
	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	server  *grpc.Server
	addr    string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer()
	handler.Register(srv)

	return &grpcServer{
		handler: handler,
		server:  srv,
		addr:    cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) name() string {
	return "grpc"
}

func (g *grpcServer) address() string {
	return g.addr
}

func (g *grpcServer) serve(l net.Listener) error {
	return g.server.Serve(l)
}

// shutdown reports NOT_SERVING first, then drains in-flight RPCs. Streams
// still open when ctx expires are closed forcibly.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
		return ctx.Err()
	}
}
