package vaultsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a small HTTP client for the vault service API. It is used by the
// end-to-end tests and is usable as a standalone SDK.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client for the given base URL (no trailing slash required).
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates a new account. The response never echoes the password.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/register", "", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login verifies credentials and returns an authenticated Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", "", LoginRequest{Email: email, Password: password}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &Session{client: c, Token: out.AccessToken}, nil
}

// Providers lists the federated identity providers enabled on the server.
func (c *Client) Providers(ctx context.Context) (*ProvidersResponse, error) {
	var out ProvidersResponse
	if err := c.do(ctx, http.MethodGet, "/v1/auth/providers", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Session is an authenticated view of the API, bound to one bearer token.
type Session struct {
	client *Client

	// Token is the raw bearer session token.
	Token string
}

// NewSession wraps an externally obtained token (e.g. from a federated
// callback) in a Session.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, Token: token}
}

// UserInfo returns the authenticated user's public identity.
func (s *Session) UserInfo(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := s.client.do(ctx, http.MethodGet, "/v1/userinfo", s.Token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEntries returns the caller's vault entries, newest first.
func (s *Session) ListEntries(ctx context.Context) ([]EntryResponse, error) {
	var out EntriesResponse
	if err := s.client.do(ctx, http.MethodGet, "/v1/entries", s.Token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

// CreateEntry stores a new vault entry for the caller.
func (s *Session) CreateEntry(ctx context.Context, req CreateEntryRequest) (*EntryResponse, error) {
	var out EntryResponse
	if err := s.client.do(ctx, http.MethodPost, "/v1/entries", s.Token, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEntry removes a vault entry the caller owns.
func (s *Session) DeleteEntry(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/v1/entries/"+id, s.Token, nil, nil, http.StatusNoContent)
}

// do performs one API request and decodes either the expected response or an
// APIError.
func (c *Client) do(
	ctx context.Context,
	method, path, token string,
	body, out any,
	wantStatus int,
) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("vaultsdk: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("vaultsdk: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("vaultsdk: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("vaultsdk: decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var wire ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil || wire.Error == "" {
		apiErr.Code = ErrorCodeServerError
		apiErr.Description = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		return apiErr
	}

	apiErr.Code = wire.Error
	apiErr.Description = wire.Description
	return apiErr
}
