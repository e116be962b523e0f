// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLen bounds how much of an upstream error body ends up in logs.
const maxErrorBodyLen = 200

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	if runes := []rune(body); len(runes) > maxErrorBodyLen {
		body = string(runes[:maxErrorBodyLen])
	}

	return fmt.Errorf("%w: http %d: %s", ErrFactAPIUnavailable, resp.StatusCode(), body)
}

func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrFactAPITimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrFactAPITimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrFactAPIUnavailable, err)
}
