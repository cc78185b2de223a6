// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/desktop-commander-setup/internal/logger"
	"github.com/MKhiriev/desktop-commander-setup/internal/utils"
)

type httpRegistryProbe struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// packageManifest is the part of the registry "latest" document we read.
type packageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// NewHTTPRegistryProbe constructs an HTTP implementation of [RegistryProbe]
// that queries GET <registryURL>/<package>/latest. It normalises and
// validates registryURL and configures the underlying HTTP client with the
// resolved base URL and timeout.
//
// Returns an error if registryURL is empty or cannot be parsed as a valid URL.
func NewHTTPRegistryProbe(registryURL string, timeout time.Duration, logger *logger.Logger) (RegistryProbe, error) {
	baseURL, err := normalizeBaseURL(registryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpRegistryProbe{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// IsPublished implements [RegistryProbe]. HTTP 200 with a non-empty version
// means published, HTTP 404 means the registry confirmed the package is
// absent. Transport failures, other statuses and undecodable bodies wrap
// [ErrProbeFailed].
func (h *httpRegistryProbe) IsPublished(ctx context.Context, packageName string) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/" + url.PathEscape(packageName) + "/latest")
	if err != nil {
		return false, fmt.Errorf("%w: registry request: %w", ErrProbeFailed, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.logger.Debug().Str("package", packageName).Msg("registry has no such package")
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrProbeFailed, err)
	}

	var manifest packageManifest
	if err = json.Unmarshal(resp.Body(), &manifest); err != nil {
		return false, fmt.Errorf("%w: decode registry response: %w", ErrProbeFailed, err)
	}

	h.logger.Debug().Str("package", packageName).Str("version", manifest.Version).Msg("registry lookup finished")

	return manifest.Version != "", nil
}
