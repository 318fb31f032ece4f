// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/MKhiriev/go-notes-summarizer/internal/config"
	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/metrics"
)

// Fallback reasons reported to metrics and logs.
const (
	FallbackDisabled = "disabled"
	FallbackError    = "error"
	FallbackEmpty    = "empty"
)

// Engine produces summaries. It never fails: every model problem ends in
// [LocalRule].
type Engine struct {
	model   Model
	cache   *cache.Cache
	metrics *metrics.NotesMetrics
	logger  *logger.Logger
}

// Option configures an [Engine].
type Option func(*Engine)

// WithCacheTTL memoises model summaries for ttl, keyed by the SHA-256 of the
// input. A non-positive ttl disables the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		if ttl <= 0 {
			e.cache = nil
			return
		}
		e.cache = cache.New(ttl, 2*ttl)
	}
}

// WithMetrics records durations, fallbacks and cache hits in m.
func WithMetrics(m *metrics.NotesMetrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine builds an Engine around model. A nil model means the remote path
// is disabled and every summary comes from [LocalRule].
func NewEngine(model Model, opts ...Option) *Engine {
	e := &Engine{
		model:  model,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewEngineFromConfig wires the remote model described by cfg, when enabled,
// behind a [LazyModel].
func NewEngineFromConfig(cfg config.Summarizer, m *metrics.NotesMetrics, log *logger.Logger) *Engine {
	var model Model
	if cfg.UseHF {
		model = NewLazyModel(func() (Model, error) {
			return NewHFModel(cfg)
		})
	}

	return NewEngine(model,
		WithCacheTTL(cfg.CacheTTL),
		WithMetrics(m),
		WithLogger(log.Component("summarizer")),
	)
}

// Summarize returns the model summary of text when the model is enabled and
// answers with a non-empty summary, and [LocalRule] of text otherwise.
func (e *Engine) Summarize(ctx context.Context, text string) string {
	if e.model == nil {
		return e.local(text, FallbackDisabled, nil)
	}

	key := cacheKey(text)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			e.metrics.IncSummaryCacheHits()
			return cached.(string)
		}
	}

	start := time.Now()
	summary, err := e.callModel(ctx, text)
	if err != nil {
		reason := FallbackError
		if errors.Is(err, ErrEmptySummary) {
			reason = FallbackEmpty
		}
		return e.local(text, reason, err)
	}
	e.metrics.ObserveSummarize(metrics.SourceModel, time.Since(start))

	if e.cache != nil {
		e.cache.SetDefault(key, summary)
	}

	return summary
}

// callModel converts a model panic into an error.
func (e *Engine) callModel(ctx context.Context, text string) (summary string, err error) {
	defer func() {
		if r := recover(); r != nil {
			summary, err = "", fmt.Errorf("summarization model panicked: %v", r)
		}
	}()

	summary, err = e.model.Summarize(ctx, text)
	if err == nil && summary == "" {
		err = ErrEmptySummary
	}
	return summary, err
}

func (e *Engine) local(text, reason string, cause error) string {
	start := time.Now()
	summary := LocalRule(text)
	e.metrics.ObserveSummarize(metrics.SourceLocal, time.Since(start))

	if reason != FallbackDisabled {
		e.metrics.RecordFallback(reason)
		e.logger.Debug().Err(cause).Str("reason", reason).Msg("falling back to local summary rule")
	}

	return summary
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
