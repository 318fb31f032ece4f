// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest carries the credentials of a new account.
// Role is optional and defaults to [RoleAgent].
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// LoginRequest carries the credentials of an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateNoteRequest is the body of POST /notes.
type CreateNoteRequest struct {
	RawText *string `json:"raw_text"`
}
