// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// notes API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them in
// one place ensures consistent wording throughout the API.
package app

const (
	// MsgServiceUp is the message of the root liveness endpoint.
	MsgServiceUp = "Notes API up"

	// MsgStatusOK is the status reported by the health endpoint.
	MsgStatusOK = "ok"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmailExists is returned when a signup attempt uses an email that is
	// already registered.
	MsgEmailExists = "Email exists!"

	// MsgInvalidRole is returned when a signup request names a role other
	// than ADMIN or AGENT.
	MsgInvalidRole = "Role must be ADMIN or AGENT"

	// MsgInvalidCredentials is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidCredentials = "Invalid Credentials!"

	// MsgInvalidToken is returned for any bearer token that cannot be
	// verified. Expired and malformed tokens are not distinguished.
	MsgInvalidToken = "invalid token"

	// MsgUnauthorized is returned when the token is valid but its subject no
	// longer exists, or the Authorization header is missing.
	MsgUnauthorized = "Unauthorized"

	// MsgAdminsOnly is returned when a non-admin calls an admin endpoint.
	MsgAdminsOnly = "Admins Only"

	// MsgForbidden is returned when the caller is neither the owner of the
	// requested note nor an admin.
	MsgForbidden = "Forbidden!"

	// MsgNotFound is returned when the requested note does not exist.
	MsgNotFound = "Not Found"

	// MsgInvalidNoteID is returned when the note identifier in the path is
	// not a positive integer.
	MsgInvalidNoteID = "note id must be a positive integer"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// TokenTypeBearer is the token_type reported alongside access tokens.
	TokenTypeBearer = "bearer"
)
