// Package api is the CRM platform API client. Every remote operation in the
// process goes through Client.doRequest, the single chokepoint that attaches
// tenant and identity headers; no call site assembles headers itself.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/admitly/admitctl/internal/errors"
	"github.com/admitly/admitctl/internal/state"
	"github.com/admitly/admitctl/internal/tenant"
)

// Client is the CRM platform API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	resolver *tenant.Resolver
	store    *state.Store
}

// NewClient creates a new platform API client scoped by the given resolver
// and durable store.
func NewClient(baseURL string, timeout time.Duration, resolver *tenant.Resolver, store *state.Store) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		resolver: resolver,
		store:    store,
	}
}

// requestOptions carries per-request overrides.
type requestOptions struct {
	token string
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

// WithToken uses an explicit bearer token for one request instead of the
// stored one.
func WithToken(token string) RequestOption {
	return func(o *requestOptions) {
		o.token = token
	}
}

// doRequest performs an HTTP request with tenant and identity headers.
// Headers for unresolvable values are omitted entirely, never sent empty;
// omission signals "unscoped" to the backend.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, opts ...RequestOption) (*http.Response, error) {
	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if id := c.resolver.ID(); id != "" {
		req.Header.Set("X-Tenant-ID", id)
	}
	if slug := c.resolver.Slug(); slug != "" {
		req.Header.Set("X-Tenant-Slug", slug)
	}

	token := options.token
	if token == "" {
		token = c.store.Get(state.KeyToken)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(err)
	}

	return resp, nil
}

// errorResponse represents an API error response envelope
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// decodeResponse parses the response body into the target struct, mapping
// failure statuses onto the error taxonomy.
func decodeResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewAPIError(resp.StatusCode, errorMessage(resp))
	}

	if resp.StatusCode == http.StatusNoContent || target == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// errorMessage extracts the error envelope message from a failed response.
func errorMessage(resp *http.Response) string {
	body, _ := io.ReadAll(resp.Body)

	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}

	return string(body)
}
