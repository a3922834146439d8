package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"hirehack/internal/config"
	"hirehack/internal/delivery/http/middleware"
	"hirehack/internal/pkg/response"
	"hirehack/internal/relay"
	"hirehack/internal/session"
)

type AuthHandler struct {
	relay *relay.Client
	cfg   config.AppConfig
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(relayClient *relay.Client, cfg config.AppConfig) *AuthHandler {
	return &AuthHandler{relay: relayClient, cfg: cfg}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Post("/logout", h.Logout)
	r.Get("/session", h.Session)
	r.Get("/callback", h.Callback)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	result, rerr := h.relay.Login(c.Context(), req.Username, req.Password)
	if rerr != nil {
		return rerr
	}

	session.Establish(c, result.AccessToken, result.RefreshToken, result.ExpireIn)
	// Message text matches what the backend's clients already expect.
	return response.Success(c, fiber.StatusOK, "User Login Sucess", nil)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	// Registration chains straight into login so the session exists when the
	// client lands on the dashboard.
	result, rerr := h.relay.Register(c.Context(), req.Username, req.Email, req.Password)
	if rerr != nil {
		return rerr
	}

	session.Establish(c, result.AccessToken, result.RefreshToken, result.ExpireIn)
	return response.Success(c, fiber.StatusOK, "User registered successfully", nil)
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	session.Clear(c)
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

// Session reports cookie presence and, when the access token carries a
// readable exp claim, its expiry. Display only.
func (h *AuthHandler) Session(c fiber.Ctx) error {
	sc := session.FromRequest(c)
	data := fiber.Map{"authenticated": sc.Authenticated()}
	if exp, ok := session.TokenExpiry(sc.AccessToken); ok {
		data["expires_at"] = exp.UTC()
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

// Callback handles the OAuth return leg: tokens arrive as query parameters,
// become cookies, and the browser is bounced to the dashboard.
func (h *AuthHandler) Callback(c fiber.Ctx) error {
	accessToken := c.Query("accessToken")
	refreshToken := c.Query("refreshToken")
	expireIn, _ := strconv.Atoi(c.Query("expireIn"))

	if accessToken == "" && refreshToken == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing tokens", nil)
	}

	session.Establish(c, accessToken, refreshToken, expireIn)
	return c.Redirect().To(h.cfg.AppURL + "/dashboard")
}
