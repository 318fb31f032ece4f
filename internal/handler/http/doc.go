// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the notes API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer authentication, request tracing, access logging,
// gzip request bodies and response compression are handled in this package
// before requests are delegated to the service layer. Every error response is
// a JSON object of the form {"detail": "<message>"}.
package http
