package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"hirehack/internal/delivery/http/middleware"
	"hirehack/internal/pkg/payment"
	"hirehack/internal/pkg/response"
	"hirehack/internal/relay"
)

type PaymentHandler struct {
	relay *relay.Client
}

func NewPaymentHandler(relayClient *relay.Client) *PaymentHandler {
	return &PaymentHandler{relay: relayClient}
}

func (h *PaymentHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/checkout", h.Checkout)
	r.Get("/failure", h.Failure)
}

// Checkout validates the plan parameters and hands back the backend checkout
// URL for the browser to follow.
func (h *PaymentHandler) Checkout(c fiber.Ctx) error {
	amount, err := strconv.Atoi(c.Query("amount"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "A numeric amount is required", err)
	}

	url, rerr := h.relay.CheckoutURL(amount, strings.ToLower(c.Query("interval")))
	if rerr != nil {
		return rerr
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"checkout_url": url})
}

// Failure maps a processor error code to the text shown on the failure page.
func (h *PaymentHandler) Failure(c fiber.Ctx) error {
	code := c.Query("error")
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"code":    code,
		"message": payment.FailureMessage(code),
	})
}
