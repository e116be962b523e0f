// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/dynamic-profile/internal/config"
	"github.com/MKhiriev/dynamic-profile/internal/logger"
	"github.com/MKhiriev/dynamic-profile/internal/utils"
	"github.com/MKhiriev/dynamic-profile/internal/validators"
	"github.com/MKhiriev/dynamic-profile/models"
	"github.com/go-resty/resty/v2"
)

// factPreviewLen is the number of characters of a fetched fact written to
// the log.
const factPreviewLen = 50

// traceIDHeader carries the inbound request's trace ID to the fact API.
const traceIDHeader = "X-Trace-ID"

type httpFactAdapter struct {
	client *utils.HTTPClient

	factURL string
	timeout time.Duration

	validator validators.Validator
	logger    *logger.Logger
}

// NewHTTPFactAdapter constructs the resty-based implementation of
// [FactAdapter]. The client timeout and the per-call context deadline are
// both set to cfg.RequestTimeout(). Redirects are not followed, so a 3xx
// answer fails the fetch as unavailable.
//
// Returns an error if cfg.FactAPIURL is empty or is not an absolute http(s)
// URL, or if the timeout is not positive.
func NewHTTPFactAdapter(cfg config.Adapter, validator validators.Validator, logger *logger.Logger) (FactAdapter, error) {
	factURL, err := normalizeFactURL(cfg.FactAPIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid fact API url: %w", err)
	}

	timeout := cfg.RequestTimeout()
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid fact API timeout: %d seconds", cfg.TimeoutSeconds)
	}

	client := utils.NewHTTPClient(logger)
	client.
		SetTimeout(timeout).
		SetRedirectPolicy(resty.NoRedirectPolicy()).
		SetHeader("Accept", "application/json")

	return &httpFactAdapter{
		client:    client,
		factURL:   factURL,
		timeout:   timeout,
		validator: validator,
		logger:    logger,
	}, nil
}

func normalizeFactURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyFactAPIURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return u.String(), nil
}

// FetchFact implements [FactAdapter].
func (h *httpFactAdapter) FetchFact(ctx context.Context) (models.RemoteFact, error) {
	log := logger.FromContextOr(ctx, h.logger)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	log.Info().Str("url", h.factURL).Msg("fetching fact")

	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	resp, err := req.Get(h.factURL)
	if err != nil {
		err = mapTransportError(err)
		log.Error().Err(err).Str("url", h.factURL).Msg("error fetching fact")
		return models.RemoteFact{}, err
	}
	if err = mapHTTPError(resp); err != nil {
		log.Error().Err(err).Str("url", h.factURL).Msg("fact API returned an error status")
		return models.RemoteFact{}, err
	}

	fact, err := decodeRemoteFact(ctx, resp.Body(), h.validator)
	if err != nil {
		log.Error().Err(err).Str("url", h.factURL).Msg("error decoding fact")
		return models.RemoteFact{}, err
	}

	log.Info().
		Str("fact", preview(fact.Fact, factPreviewLen)).
		Dur("took", resp.Time()).
		Msg("fact fetched")

	return fact, nil
}

// preview returns the first n runes of s followed by "...".
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}
