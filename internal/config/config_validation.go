// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	checks := []struct {
		sentinel error
		rule     validation.Validatable
	}{
		{ErrInvalidAppConfigs, cfg.App},
		{ErrInvalidStorageConfigs, cfg.Storage.DB},
		{ErrInvalidServerConfigs, cfg.Server},
		{ErrInvalidSummarizerConfigs, cfg.Summarizer},
		{ErrInvalidWorkerConfigs, cfg.Workers},
	}

	for _, check := range checks {
		if err := check.rule.Validate(); err != nil {
			return fmt.Errorf("%w: %w", check.sentinel, err)
		}
	}

	return nil
}

// Validate implements [validation.Validatable].
func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.TokenSignKey, validation.Required),
		validation.Field(&a.TokenAlgorithm, validation.Required, validation.In("HS256", "HS384", "HS512")),
		validation.Field(&a.TokenExpiresMin, validation.Required, validation.Min(1)),
	)
}

// Validate implements [validation.Validatable].
func (d DB) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.DSN, validation.Required),
	)
}

// Validate implements [validation.Validatable].
func (s Server) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.HTTPAddress, validation.Required),
	)
}

// Validate implements [validation.Validatable].
func (s Summarizer) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Model, validation.When(s.UseHF, validation.Required)),
		validation.Field(&s.Endpoint, validation.When(s.UseHF, validation.Required)),
	)
}

// Validate implements [validation.Validatable].
func (w Workers) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.QueueBackend, validation.Required, validation.In(QueueBackendMemory, QueueBackendRedis)),
		validation.Field(&w.RedisAddr, validation.When(w.QueueBackend == QueueBackendRedis, validation.Required)),
		validation.Field(&w.RedisQueueKey, validation.When(w.QueueBackend == QueueBackendRedis, validation.Required)),
	)
}
