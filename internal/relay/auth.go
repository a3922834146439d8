package relay

import (
	"context"
	"net/http"

	"hirehack/internal/session"
)

// LoginResult is the token triple the backend issues on successful
// authentication. ExpireIn is the access-token TTL in seconds and becomes the
// access cookie's max age.
type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpireIn     int    `json:"expire_in"`
}

// Login posts the credentials as a multipart form. The backend signals bad
// credentials with a "detail" field, which surfaces as an unauthorized error.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, *Error) {
	if username == "" || password == "" {
		return LoginResult{}, newError(KindValidation, 0, "username and password are required", nil)
	}

	var resp struct {
		Detail string `json:"detail"`
		LoginResult
	}
	rerr := c.doForm(ctx, session.Context{}, http.MethodPost, "/api/users/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if rerr != nil {
		return LoginResult{}, rerr
	}
	if resp.Detail != "" {
		return LoginResult{}, newError(KindUnauthorized, http.StatusUnauthorized, resp.Detail, nil)
	}
	if resp.AccessToken == "" {
		return LoginResult{}, newError(KindUpstream, 0, "login response missing tokens", nil)
	}
	return resp.LoginResult, nil
}

// Register creates the account and, on success, immediately logs in so the
// caller can establish a session in the same round trip.
func (c *Client) Register(ctx context.Context, username, email, password string) (LoginResult, *Error) {
	if username == "" || email == "" || password == "" {
		return LoginResult{}, newError(KindValidation, 0, "username, email and password are required", nil)
	}

	var resp struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	rerr := c.doForm(ctx, session.Context{}, http.MethodPost, "/api/users/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &resp)
	if rerr != nil {
		return LoginResult{}, rerr
	}
	if resp.Detail != "" {
		return LoginResult{}, newError(KindValidation, 0, resp.Detail, nil)
	}

	return c.Login(ctx, username, password)
}
