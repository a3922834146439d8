package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"hirehack/internal/session"
)

func guardedApp() *fiber.App {
	app := fiber.New()
	app.Use(NewSessionGuard().Middleware())
	for _, path := range []string{"/login", "/register", "/dashboard", "/dashboard/resumes", "/pricing"} {
		app.Get(path, func(c fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
	}
	return app
}

func TestSessionGuardDecisions(t *testing.T) {
	cases := []struct {
		name          string
		path          string
		authenticated bool
		wantStatus    int
		wantLocation  string
	}{
		{"anonymous login page", "/login", false, fiber.StatusOK, ""},
		{"anonymous register page", "/register", false, fiber.StatusOK, ""},
		{"anonymous dashboard", "/dashboard", false, fiber.StatusFound, "/login"},
		{"anonymous dashboard subpage", "/dashboard/resumes", false, fiber.StatusFound, "/login"},
		{"signed-in login page", "/login", true, fiber.StatusFound, "/dashboard"},
		{"signed-in register page", "/register", true, fiber.StatusFound, "/dashboard"},
		{"signed-in dashboard", "/dashboard", true, fiber.StatusOK, ""},
		{"neutral page anonymous", "/pricing", false, fiber.StatusOK, ""},
		{"neutral page signed in", "/pricing", true, fiber.StatusOK, ""},
	}

	app := guardedApp()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.authenticated {
				req.AddCookie(&http.Cookie{Name: session.AccessCookie, Value: "token"})
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("test request: %v", err)
			}
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
			if loc := resp.Header.Get("Location"); loc != tc.wantLocation {
				t.Fatalf("location = %q, want %q", loc, tc.wantLocation)
			}
		})
	}
}

func TestSessionGuardRefreshTokenCounts(t *testing.T) {
	app := guardedApp()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: session.RefreshCookie, Value: "token"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("refresh token alone should pass the guard, got %d", resp.StatusCode)
	}
}
