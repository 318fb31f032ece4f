// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenResponse is returned by the signup and login endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RootResponse is returned by GET /.
type RootResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// AdminPingResponse is returned by GET /admin/ping.
type AdminPingResponse struct {
	OK   bool   `json:"ok"`
	Who  string `json:"who"`
	Role Role   `json:"role"`
}
