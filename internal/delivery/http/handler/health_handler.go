package handler

import (
	"github.com/gofiber/fiber/v3"

	"hirehack/internal/pkg/response"
)

type HealthHandler struct {
	appName     string
	environment string
}

func NewHealthHandler(appName, environment string) *HealthHandler {
	return &HealthHandler{appName: appName, environment: environment}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"app": h.appName,
		"env": h.environment,
	})
}
