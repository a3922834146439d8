package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"hirehack/internal/config"
	"hirehack/internal/delivery/http/middleware"
	"hirehack/internal/flow"
	"hirehack/internal/flow/store"
	"hirehack/internal/pkg/response"
	"hirehack/internal/ws"
)

type InterviewHandler struct {
	cfg   config.InterviewConfig
	flows store.Store
	hub   *ws.Hub
}

func NewInterviewHandler(cfg config.InterviewConfig, flows store.Store, hub *ws.Hub) *InterviewHandler {
	return &InterviewHandler{cfg: cfg, flows: flows, hub: hub}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/start", h.Start)
	r.Post("/:id/stop", h.Stop)
	r.Post("/:id/events", h.Events)
	r.Get("/:id", h.Get)
}

func interviewKey(id string) string { return "flow:interview:" + id }

// Start opens a new call flow and returns the provider credentials the
// browser needs to dial.
func (h *InterviewHandler) Start(c fiber.Ctx) error {
	if h.cfg.PublicKey == "" || h.cfg.AssistantID == "" {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Voice interviews are not configured", nil)
	}

	f := flow.NewInterviewFlow(uuid.NewString())
	if err := f.Start(); err != nil {
		return interviewFlowError(err)
	}
	if err := h.flows.Put(c.Context(), interviewKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist interview flow", err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"id":           f.ID,
		"state":        f.State.String(),
		"public_key":   h.cfg.PublicKey,
		"assistant_id": h.cfg.AssistantID,
	})
}

func (h *InterviewHandler) Stop(c fiber.Ctx) error {
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if err := f.Stop(); err != nil {
		return interviewFlowError(err)
	}
	if err := h.flows.Put(c.Context(), interviewKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist interview flow", err)
	}
	h.publishState(f)
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.view(f))
}

// Events receives provider callbacks, folds them into the flow, and fans the
// updated state out to websocket subscribers.
func (h *InterviewHandler) Events(c fiber.Ctx) error {
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	var ev flow.CallEvent
	if err := c.Bind().Body(&ev); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	if err := f.Apply(ev); err != nil {
		return interviewFlowError(err)
	}
	if err := h.flows.Put(c.Context(), interviewKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist interview flow", err)
	}
	h.publishState(f)
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.view(f))
}

func (h *InterviewHandler) Get(c fiber.Ctx) error {
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.view(f))
}

func (h *InterviewHandler) view(f *flow.InterviewFlow) fiber.Map {
	return fiber.Map{
		"id":       f.ID,
		"state":    f.State.String(),
		"speaking": f.Speaking,
		"messages": f.Messages,
	}
}

func (h *InterviewHandler) publishState(f *flow.InterviewFlow) {
	if h.hub == nil {
		return
	}
	h.hub.PublishJSON("interview:"+f.ID, h.view(f))
}

func (h *InterviewHandler) load(ctx context.Context, id string) (*flow.InterviewFlow, error) {
	if id == "" {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Interview flow id is required", nil)
	}
	var f flow.InterviewFlow
	found, err := h.flows.Get(ctx, interviewKey(id), &f)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusInternalServerError, "Cannot load interview flow", err)
	}
	if !found {
		return nil, middleware.NewAppError(fiber.StatusNotFound, "Interview flow not found", nil)
	}
	return &f, nil
}

func interviewFlowError(err error) error {
	switch {
	case errors.Is(err, flow.ErrUnknownEvent):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, flow.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
