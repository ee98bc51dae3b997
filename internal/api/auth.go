package api

import (
	"context"
	"net/http"

	"github.com/admitly/admitctl/internal/errors"
)

// loginRequest is the payload of POST /auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token. Rejected credentials map to the
// bad-credentials error; the caller's session is left untouched.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		defer resp.Body.Close()
		return nil, errors.NewBadCredentialsError(errorMessage(resp))
	}

	var login LoginResponse
	if err := decodeResponse(resp, &login); err != nil {
		return nil, err
	}
	return &login, nil
}

// Me returns the identity behind the current token. A 401 means the stored
// token was rejected, which the bootstrapper recovers from silently.
func (c *Client) Me(ctx context.Context, opts ...RequestOption) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users/me", nil, opts...)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		defer resp.Body.Close()
		return nil, errors.NewSessionExpiredError()
	}

	var user User
	if err := decodeResponse(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
