package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
)

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestEstablishSetsBothCookies(t *testing.T) {
	app := fiber.New()
	app.Post("/login", func(c fiber.Ctx) error {
		Establish(c, "access-token", "refresh-token", 3600)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}

	access := findCookie(t, resp, AccessCookie)
	if access == nil {
		t.Fatalf("access cookie missing")
	}
	if access.Value != "access-token" || !access.HttpOnly || access.Path != "/" {
		t.Fatalf("access cookie = %+v", access)
	}
	if access.MaxAge != 3600 {
		t.Fatalf("access MaxAge = %d, want 3600", access.MaxAge)
	}

	refresh := findCookie(t, resp, RefreshCookie)
	if refresh == nil {
		t.Fatalf("refresh cookie missing")
	}
	if refresh.Value != "refresh-token" || !refresh.HttpOnly {
		t.Fatalf("refresh cookie = %+v", refresh)
	}
	if refresh.MaxAge != 0 || !refresh.Expires.IsZero() {
		t.Fatalf("refresh cookie should be session-lived: %+v", refresh)
	}
}

func TestClearExpiresBothCookies(t *testing.T) {
	app := fiber.New()
	app.Post("/logout", func(c fiber.Ctx) error {
		Clear(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/logout", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}

	for _, name := range []string{AccessCookie, RefreshCookie} {
		ck := findCookie(t, resp, name)
		if ck == nil {
			t.Fatalf("%s cookie missing", name)
		}
		if ck.MaxAge >= 0 && ck.Expires.After(time.Now()) {
			t.Fatalf("%s cookie not expired: %+v", name, ck)
		}
	}
}

func TestFromRequestAndAuthenticated(t *testing.T) {
	app := fiber.New()
	var got Context
	app.Get("/probe", func(c fiber.Ctx) error {
		got = FromRequest(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookie, Value: "abc"})
	if _, err := app.Test(req); err != nil {
		t.Fatalf("test request: %v", err)
	}
	if got.AccessToken != "abc" || got.RefreshToken != "" {
		t.Fatalf("context = %+v", got)
	}
	if !got.Authenticated() {
		t.Fatalf("access token alone should authenticate")
	}

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: RefreshCookie, Value: "def"})
	if _, err := app.Test(req); err != nil {
		t.Fatalf("test request: %v", err)
	}
	if !got.Authenticated() {
		t.Fatalf("refresh token alone should authenticate")
	}

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("test request: %v", err)
	}
	if got.Authenticated() {
		t.Fatalf("no cookies should not authenticate")
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, ok := TokenExpiry(signed)
	if !ok {
		t.Fatalf("expiry not found")
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry = %v, want %v", got, exp)
	}

	if _, ok := TokenExpiry(""); ok {
		t.Fatalf("empty token should have no expiry")
	}
	if _, ok := TokenExpiry("not-a-jwt"); ok {
		t.Fatalf("garbage token should have no expiry")
	}

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice"})
	signed, err = noExp.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, ok := TokenExpiry(signed); ok {
		t.Fatalf("token without exp claim should have no expiry")
	}
}
