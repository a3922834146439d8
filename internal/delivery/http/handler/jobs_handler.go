package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"hirehack/internal/delivery/http/middleware"
	"hirehack/internal/domain/job"
	"hirehack/internal/pkg/response"
	"hirehack/internal/relay"
	"hirehack/internal/session"
)

const jobsPerPage = 10

type JobsHandler struct {
	relay *relay.Client
}

func NewJobsHandler(relayClient *relay.Client) *JobsHandler {
	return &JobsHandler{relay: relayClient}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/search", h.Search)
}

// Search runs the backend job agent and pages the result set locally.
func (h *JobsHandler) Search(c fiber.Ctx) error {
	jobTitle := c.Query("job_title")
	if jobTitle == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "A job title is required", nil)
	}
	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}

	sc := session.FromRequest(c)
	result, rerr := h.relay.SearchJobs(c.Context(), sc, jobTitle, c.Query("skills_desc"))
	if rerr != nil {
		return rerr
	}

	if len(result.Data) == 0 {
		return response.Success(c, fiber.StatusOK, "No jobs found matching your criteria.", fiber.Map{
			"jobs":        []job.Job{},
			"total":       0,
			"page":        page,
			"total_pages": 0,
		})
	}

	totalPages := (len(result.Data) + jobsPerPage - 1) / jobsPerPage
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * jobsPerPage
	end := start + jobsPerPage
	if end > len(result.Data) {
		end = len(result.Data)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"jobs":        result.Data[start:end],
		"total":       len(result.Data),
		"page":        page,
		"total_pages": totalPages,
	})
}
