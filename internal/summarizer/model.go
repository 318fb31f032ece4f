// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-notes-summarizer/internal/config"
	"github.com/MKhiriev/go-notes-summarizer/internal/utils"
)

// Model produces a summary of text. Implementations may fail; [Engine]
// treats every failure as "model unavailable".
type Model interface {
	Summarize(ctx context.Context, text string) (string, error)
}

var (
	// ErrModelUnavailable is returned by a [LazyModel] whose construction
	// failed.
	ErrModelUnavailable = errors.New("summarization model is unavailable")

	// ErrEmptySummary is returned when the model answers without a summary.
	ErrEmptySummary = errors.New("summarization model returned an empty summary")

	// ErrUnexpectedStatus is returned when the inference API answers with a
	// non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected inference api status")

	// ErrInvalidModelConfig is returned by NewHFModel for an unusable
	// endpoint or model name.
	ErrInvalidModelConfig = errors.New("invalid summarization model config")
)

// Generation parameters sent with every inference request.
const (
	hfMaxLength = 60
	hfMinLength = 10
)

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

// HFModel calls a Hugging Face Inference API compatible endpoint:
// POST {endpoint}/models/{model} answering [{"summary_text": "..."}].
type HFModel struct {
	client *utils.HTTPClient
	model  string
	token  string
}

// NewHFModel validates cfg and builds the HTTP client of the model.
func NewHFModel(cfg config.Summarizer) (*HFModel, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("%w: empty model name", ErrInvalidModelConfig)
	}

	endpoint, err := url.ParseRequestURI(cfg.Endpoint)
	if err != nil || endpoint.Host == "" {
		return nil, fmt.Errorf("%w: bad endpoint %q", ErrInvalidModelConfig, cfg.Endpoint)
	}

	return &HFModel{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.Endpoint, "/"), cfg.Timeout),
		model:  strings.Trim(cfg.Model, "/"),
		token:  cfg.APIToken,
	}, nil
}

// Summarize implements [Model].
func (m *HFModel) Summarize(ctx context.Context, text string) (string, error) {
	var out []hfSummary

	req := m.client.R().
		SetContext(ctx).
		SetBody(hfRequest{
			Inputs: text,
			Parameters: hfParameters{
				MaxLength: hfMaxLength,
				MinLength: hfMinLength,
				DoSample:  false,
			},
		}).
		SetResult(&out)
	if m.token != "" {
		req.SetAuthToken(m.token)
	}

	resp, err := req.Post("/models/" + m.model)
	if err != nil {
		return "", fmt.Errorf("error calling summarization model: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status())
	}

	if len(out) == 0 {
		return "", ErrEmptySummary
	}

	summary := strings.TrimSpace(out[0].SummaryText)
	if summary == "" {
		return "", ErrEmptySummary
	}

	return summary, nil
}
