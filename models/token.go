// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.RegisteredClaims] for standard claim access (subject, expiry)
// and carries the subject's [Role] as a private claim, so the same type is
// used both for signing and as the claims target while parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Role is the "role" claim of the token.
	Role Role `json:"role"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Email returns the subject claim, which holds the user's email.
func (t *Token) Email() string {
	return t.Subject
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
