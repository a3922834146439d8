package handler

import (
	"github.com/gofiber/fiber/v3"

	"hirehack/internal/pkg/response"
	"hirehack/internal/session"
)

// PagesHandler serves the three navigation anchors the session guard routes
// between. The actual UI lives elsewhere; these endpoints report which page
// the caller landed on and whether a session is attached.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/login", h.page("login"))
	r.Get("/register", h.page("register"))
	r.Get("/dashboard", h.page("dashboard"))
}

func (h *PagesHandler) page(name string) fiber.Handler {
	return func(c fiber.Ctx) error {
		sc := session.FromRequest(c)
		return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
			"page":          name,
			"authenticated": sc.Authenticated(),
		})
	}
}
