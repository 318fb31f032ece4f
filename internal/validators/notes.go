// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/MKhiriev/go-notes-summarizer/models"
)

// Field names accepted by [RequestValidator.Validate] to restrict validation
// to a subset of fields.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldRawText  = "raw_text"
)

const (
	maxEmailLength = 254

	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// RequestValidator validates the request bodies of the auth and notes
// endpoints. Both value and pointer forms are accepted.
type RequestValidator struct{}

// NewRequestValidator returns a [RequestValidator] as a [Validator].
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate implements [Validator].
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.CreateNoteRequest:
		return v.validateCreateNote(value, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreateNote(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = validatePassword(req.Password)
		case FieldRole:
			err = validateRole(req.Role)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validation.Validate(req.Email, validation.Required)
			if err != nil {
				err = fmt.Errorf("%w: %w", ErrInvalidEmail, err)
			}
		case FieldPassword:
			err = validation.Validate(req.Password, validation.Required)
			if err != nil {
				err = fmt.Errorf("%w: %w", ErrInvalidPassword, err)
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateNote(req models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRawText}
	}

	for _, f := range fields {
		switch f {
		case FieldRawText:
			// an empty string is a valid note; a missing field is not
			if err := validation.Validate(req.RawText, validation.NotNil); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidRawText, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	err := validation.Validate(email,
		validation.Required,
		validation.Length(1, maxEmailLength),
		is.EmailFormat,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	return nil
}

func validatePassword(password string) error {
	err := validation.Validate(password,
		validation.Required,
		validation.Length(1, maxPasswordLength),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPassword, err)
	}
	return nil
}

// validateRole accepts an empty role, which defaults to AGENT.
func validateRole(role models.Role) error {
	err := validation.Validate(role, validation.In(models.RoleAdmin, models.RoleAgent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRole, err)
	}
	return nil
}
