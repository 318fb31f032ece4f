// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTP API and the optional gRPC health
// server, including startup, signal handling, and graceful shutdown of all
// enabled transports.
package server
