package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"hirehack/internal/session"
)

// SessionGuard gates navigation on token cookie presence alone: signed-in
// users are kept off the auth pages, anonymous users off the dashboard.
// Tokens are not validated here; every relayed request is verified by the
// backend anyway.
type SessionGuard struct{}

func NewSessionGuard() *SessionGuard {
	return &SessionGuard{}
}

func (g *SessionGuard) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		sc := session.FromRequest(c)
		path := c.Path()

		switch {
		case sc.Authenticated() && (path == "/login" || path == "/register"):
			return c.Redirect().To("/dashboard")
		case !sc.Authenticated() && strings.HasPrefix(path, "/dashboard"):
			return c.Redirect().To("/login")
		}
		return c.Next()
	}
}
