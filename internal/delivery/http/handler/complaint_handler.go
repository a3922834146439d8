package handler

import (
	"github.com/gofiber/fiber/v3"

	"hirehack/internal/delivery/http/middleware"
	"hirehack/internal/domain/complaint"
	"hirehack/internal/pkg/response"
	"hirehack/internal/relay"
	"hirehack/internal/session"
)

type ComplaintHandler struct {
	relay *relay.Client
}

func NewComplaintHandler(relayClient *relay.Client) *ComplaintHandler {
	return &ComplaintHandler{relay: relayClient}
}

func (h *ComplaintHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:complaintID", h.Details)
	r.Put("/:complaintID", h.Update)
	r.Delete("/:complaintID", h.Delete)
}

// List fetches the user's complaints and applies the q/status filters
// locally, so repeated filtering does not hit the backend again.
func (h *ComplaintHandler) List(c fiber.Ctx) error {
	sc := session.FromRequest(c)
	profile, rerr := h.relay.Profile(c.Context(), sc)
	if rerr != nil {
		return rerr
	}

	items, rerr := h.relay.Complaints(c.Context(), sc, profile.ID)
	if rerr != nil {
		return rerr
	}

	filtered := complaint.Filter(items, c.Query("q"), c.Query("status"))
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"complaints": filtered,
		"total":      len(filtered),
	})
}

type complaintRequest struct {
	Title       string `json:"title"`
	Desc        string `json:"desc"`
	FeatureName string `json:"feature_name"`
	Status      string `json:"status"`
}

func (h *ComplaintHandler) Create(c fiber.Ctx) error {
	var req complaintRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	if req.Title == "" || req.Desc == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Title and description are required", nil)
	}

	sc := session.FromRequest(c)
	profile, rerr := h.relay.Profile(c.Context(), sc)
	if rerr != nil {
		return rerr
	}

	created, rerr := h.relay.RegisterComplaint(c.Context(), sc, complaint.Complaint{
		Title:       req.Title,
		Desc:        req.Desc,
		FeatureName: req.FeatureName,
		Status:      req.Status,
		UserID:      profile.ID,
	})
	if rerr != nil {
		return rerr
	}
	return response.Success(c, fiber.StatusCreated, "Complaint registered successfully", created)
}

func (h *ComplaintHandler) Details(c fiber.Ctx) error {
	sc := session.FromRequest(c)
	item, rerr := h.relay.ComplaintDetails(c.Context(), sc, c.Params("complaintID"))
	if rerr != nil {
		return rerr
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}

func (h *ComplaintHandler) Update(c fiber.Ctx) error {
	var req complaintRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	sc := session.FromRequest(c)
	rerr := h.relay.UpdateComplaint(c.Context(), sc, c.Params("complaintID"), complaint.Complaint{
		Title:       req.Title,
		Desc:        req.Desc,
		FeatureName: req.FeatureName,
		Status:      req.Status,
	})
	if rerr != nil {
		return rerr
	}
	return response.Success(c, fiber.StatusOK, "Complaint updated successfully", nil)
}

func (h *ComplaintHandler) Delete(c fiber.Ctx) error {
	sc := session.FromRequest(c)
	if rerr := h.relay.DeleteComplaint(c.Context(), sc, c.Params("complaintID")); rerr != nil {
		return rerr
	}
	return response.Success(c, fiber.StatusOK, "Complaint deleted successfully", nil)
}
