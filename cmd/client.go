// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httptypes "github.com/canonical/workload-service/internal/http/types"
)

const clientTimeout = 30 * time.Second

// apiClient talks to a running server over its JSON HTTP API.
type apiClient struct {
	endpoint string
	client   *http.Client
}

// APIError carries the error envelope returned by the server.
type APIError struct {
	Status  int
	Kind    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d, %s): %s", e.Status, e.Kind, e.Message)
}

func newAPIClient(endpoint string) *apiClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &apiClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client: &http.Client{
			Timeout:   clientTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// getClient returns a client for the endpoint given by --http-endpoint.
func getClient() *apiClient {
	return newAPIClient(httpEndpoint)
}

func (c *apiClient) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *apiClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	return c.do(req, out)
}

func (c *apiClient) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope httptypes.ErrorResponse
		if err := json.Unmarshal(body, &envelope); err != nil || envelope.Status == 0 {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
		}
		return &APIError{Status: envelope.Status, Kind: envelope.Error, Message: envelope.Message}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
