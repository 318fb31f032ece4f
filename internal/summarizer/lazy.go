// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import (
	"context"
	"fmt"
	"sync"
)

// LazyModel constructs its [Model] on first use. The constructor runs at most
// once per LazyModel; if it fails (or panics, or returns nil) the failure is
// remembered and every later call reports [ErrModelUnavailable].
type LazyModel struct {
	construct func() (Model, error)

	once  sync.Once
	model Model
	err   error
}

// NewLazyModel returns a LazyModel that will build its model with construct.
func NewLazyModel(construct func() (Model, error)) *LazyModel {
	return &LazyModel{construct: construct}
}

// Get returns the constructed model, constructing it on the first call.
func (l *LazyModel) Get() (Model, error) {
	l.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				l.model = nil
				l.err = fmt.Errorf("%w: constructor panicked: %v", ErrModelUnavailable, r)
			}
		}()

		model, err := l.construct()
		switch {
		case err != nil:
			l.err = fmt.Errorf("%w: %w", ErrModelUnavailable, err)
		case model == nil:
			l.err = ErrModelUnavailable
		default:
			l.model = model
		}
	})

	return l.model, l.err
}

// Summarize implements [Model] by delegating to the constructed model.
func (l *LazyModel) Summarize(ctx context.Context, text string) (string, error) {
	model, err := l.Get()
	if err != nil {
		return "", err
	}
	return model.Summarize(ctx, text)
}
