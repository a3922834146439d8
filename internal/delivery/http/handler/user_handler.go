package handler

import (
	"github.com/gofiber/fiber/v3"

	"hirehack/internal/delivery/http/middleware"
	"hirehack/internal/domain/user"
	"hirehack/internal/pkg/response"
	"hirehack/internal/relay"
	"hirehack/internal/session"
)

type UserHandler struct {
	relay *relay.Client
}

func NewUserHandler(relayClient *relay.Client) *UserHandler {
	return &UserHandler{relay: relayClient}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/profile", h.Profile)
}

func (h *UserHandler) Profile(c fiber.Ctx) error {
	sc := session.FromRequest(c)
	profile, rerr := h.relay.Profile(c.Context(), sc)
	if rerr != nil {
		return rerr
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profile)
}

type cancelSubscriptionRequest struct {
	SubscriptionID string `json:"subscription_id"`
}

// CancelSubscription forwards the cancel and reports the cancelled status
// optimistically, the way the profile page renders it without a refetch.
func (h *UserHandler) CancelSubscription(c fiber.Ctx) error {
	var req cancelSubscriptionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	sc := session.FromRequest(c)
	if rerr := h.relay.CancelSubscription(c.Context(), sc, req.SubscriptionID); rerr != nil {
		return rerr
	}

	return response.Success(c, fiber.StatusOK, "Subscription cancelled successfully", fiber.Map{
		"subscription_status": user.SubscriptionCancelled,
	})
}
