// Package session owns the gateway's cookie plumbing: the two token cookies
// set on login, the per-request session context handed to relay calls, and
// a display-only expiry probe over the access token.
package session

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"
)

// Options mirrors the cookie attributes the gateway actually sets. Tokens are
// neither encrypted nor signed locally; HttpOnly is the only tamper guard.
type Options struct {
	MaxAge   int
	HTTPOnly bool
	Path     string
}

// SetCookie writes a cookie on the outgoing response.
func SetCookie(c fiber.Ctx, name, value string, opts Options) {
	path := opts.Path
	if path == "" {
		path = "/"
	}
	cookie := &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		HTTPOnly: opts.HTTPOnly,
	}
	if opts.MaxAge > 0 {
		cookie.MaxAge = opts.MaxAge
		cookie.Expires = time.Now().Add(time.Duration(opts.MaxAge) * time.Second)
	} else {
		// Session-lived cookie; dropped when the browser closes.
		cookie.SessionOnly = true
	}
	c.Cookie(cookie)
}

// GetCookie reads a cookie from the incoming request.
func GetCookie(c fiber.Ctx, name string) (string, bool) {
	v := c.Cookies(name)
	return v, v != ""
}

// DeleteCookie expires a cookie on the outgoing response.
func DeleteCookie(c fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
	})
}

// Context carries the caller's tokens through a single request lifecycle.
// Relay calls take it as an explicit argument instead of reading ambient
// cookie state, so they stay testable without a cookie jar.
type Context struct {
	AccessToken  string
	RefreshToken string
}

// FromRequest extracts the session context from the request cookies.
func FromRequest(c fiber.Ctx) Context {
	access, _ := GetCookie(c, AccessCookie)
	refresh, _ := GetCookie(c, RefreshCookie)
	return Context{AccessToken: access, RefreshToken: refresh}
}

// Authenticated reports token presence. No expiry or signature check happens
// here; the backend verifies every forwarded request itself.
func (sc Context) Authenticated() bool {
	return sc.AccessToken != "" || sc.RefreshToken != ""
}

// Establish writes the token pair after login, registration, or the OAuth
// callback. The access cookie expires with the token, the refresh cookie is
// session-lived.
func Establish(c fiber.Ctx, accessToken, refreshToken string, expireIn int) {
	SetCookie(c, AccessCookie, accessToken, Options{MaxAge: expireIn, HTTPOnly: true, Path: "/"})
	SetCookie(c, RefreshCookie, refreshToken, Options{HTTPOnly: true, Path: "/"})
}

// Clear drops both token cookies on logout.
func Clear(c fiber.Ctx) {
	DeleteCookie(c, AccessCookie)
	DeleteCookie(c, RefreshCookie)
}

// TokenExpiry reads the exp claim from the access token without verifying the
// signature. Display use only; it never gates anything.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
