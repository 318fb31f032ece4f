// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps a request that failed validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidRole is returned at signup for a role other than ADMIN or
	// AGENT.
	ErrInvalidRole = errors.New("role must be ADMIN or AGENT")

	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password. The two cases are not distinguished.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrUnauthorized is returned when a valid token names a user that no
	// longer exists.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when an agent reads a note it does not own.
	ErrForbidden = errors.New("forbidden")

	// ErrEnqueueFailed is returned when a note was stored but could not be
	// handed to the processing queue. The note stays queued.
	ErrEnqueueFailed = errors.New("note could not be queued for processing")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
