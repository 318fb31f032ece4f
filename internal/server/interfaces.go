// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled
	// or a transport fails, then shuts every transport down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the servers, bounded by ctx.
	Shutdown(ctx context.Context) error
}
