package handler

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"hirehack/internal/delivery/http/middleware"
	"hirehack/internal/domain/resume"
	"hirehack/internal/flow"
	"hirehack/internal/flow/store"
	"hirehack/internal/graph"
	"hirehack/internal/pkg/response"
	"hirehack/internal/relay"
	"hirehack/internal/session"
)

type ResumeHandler struct {
	relay *relay.Client
	graph *graph.Client
	flows store.Store
}

func NewResumeHandler(relayClient *relay.Client, graphClient *graph.Client, flows store.Store) *ResumeHandler {
	return &ResumeHandler{relay: relayClient, graph: graphClient, flows: flows}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", h.Upload)
	r.Post("/build", h.Build)
	r.Post("/generate", h.Generate)
	r.Post("/:id/improve", h.ImproveText)
	r.Post("/:id/apply-bullet", h.ApplyBullet)
	r.Post("/:id/improve-experience", h.ImproveExperience)
	r.Post("/:id/summary", h.GenerateSummary)
	r.Post("/:id/experience", h.BuildExperience)
	r.Post("/:id/project", h.GenerateProject)
	r.Post("/:id/skills", h.GenerateSkills)
	r.Post("/:id/save", h.Save)
	r.Get("/:id", h.Get)

	r.Get("/", h.List)
	r.Patch("/stored/:resumeID/rename", h.Rename)
	r.Delete("/stored/:resumeID", h.Delete)
	r.Post("/stored/template", h.UpdateTemplate)
}

func resumeKey(id string) string { return "flow:resume:" + id }

// requireGraph rejects AI-backed operations when no graph runtime is
// configured.
func (h *ResumeHandler) requireGraph() error {
	if h.graph == nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "AI resume tools are not configured", nil)
	}
	return nil
}

// Upload runs the whole intake: file to backend text extraction, text to the
// parser graph, parsed resume into a fresh editor flow.
func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	if err := h.requireGraph(); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "A resume file is required", err)
	}

	f := flow.NewResumeFlow(uuid.NewString())
	if err := f.BeginUpload(fileHeader.Filename); err != nil {
		return resumeFlowError(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot read uploaded file", err)
	}
	defer file.Close()

	sc := session.FromRequest(c)
	text, rerr := h.relay.ReadResumeFile(c.Context(), sc, fileHeader.Filename, file)
	if rerr != nil {
		_ = f.ParseFailed()
		return rerr
	}

	if err := f.BeginProcessing(); err != nil {
		return resumeFlowError(err)
	}
	parsed, err := h.graph.ParseResume(c.Context(), text)
	if err != nil {
		_ = f.ParseFailed()
		return middleware.NewAppError(fiber.StatusBadGateway, "Resume parsing failed", err)
	}
	if err := f.ParseCompleted(parsed); err != nil {
		return resumeFlowError(err)
	}

	if err := h.flows.Put(c.Context(), resumeKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist resume flow", err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"id":     f.ID,
		"state":  f.State.String(),
		"resume": f.Parsed,
	})
}

type buildResumeRequest struct {
	Role           string `json:"role"`
	JobDescription string `json:"job_description"`
}

// Build drafts a resume for a target role through the backend agent and opens
// it in a fresh editor flow.
func (h *ResumeHandler) Build(c fiber.Ctx) error {
	var req buildResumeRequest
	if err := c.Bind().Body(&req); err != nil || req.Role == "" || req.JobDescription == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Role and job description are required", err)
	}

	sc := session.FromRequest(c)
	parsed, rerr := h.relay.BuildResume(c.Context(), sc, req.Role, req.JobDescription)
	if rerr != nil {
		return rerr
	}
	return h.openGenerated(c, parsed)
}

// Generate builds a resume from the user's free-text profile details and opens
// it in a fresh editor flow.
func (h *ResumeHandler) Generate(c fiber.Ctx) error {
	var req relay.GenerateResumeInput
	if err := c.Bind().Body(&req); err != nil || req.Name == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "A name is required", err)
	}

	sc := session.FromRequest(c)
	parsed, rerr := h.relay.GenerateResume(c.Context(), sc, req)
	if rerr != nil {
		return rerr
	}
	return h.openGenerated(c, parsed)
}

func (h *ResumeHandler) openGenerated(c fiber.Ctx, parsed resume.Parsed) error {
	f := flow.NewResumeFlow(uuid.NewString())
	if err := f.OpenGenerated(parsed); err != nil {
		return resumeFlowError(err)
	}
	if err := h.flows.Put(c.Context(), resumeKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist resume flow", err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"id":     f.ID,
		"state":  f.State.String(),
		"resume": f.Parsed,
	})
}

func (h *ResumeHandler) Get(c fiber.Ctx) error {
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"id":     f.ID,
		"state":  f.State.String(),
		"resume": f.Parsed,
	})
}

type improveTextRequest struct {
	Text string `json:"text"`
}

// ImproveText returns the three rewrite variants for a passage. The flow is
// loaded only to confirm the editor is open; nothing is applied yet.
func (h *ResumeHandler) ImproveText(c fiber.Ctx) error {
	if err := h.requireGraph(); err != nil {
		return err
	}
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if f.State != flow.ResumeEditing {
		return middleware.NewAppError(fiber.StatusConflict, "Resume is not being edited", nil)
	}

	var req improveTextRequest
	if err := c.Bind().Body(&req); err != nil || req.Text == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Text is required", err)
	}

	versions, err := h.graph.ImproveText(c.Context(), req.Text)
	if err != nil {
		return graphError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, versions)
}

type applyBulletRequest struct {
	ExperienceIndex int    `json:"experience_index"`
	BulletIndex     int    `json:"bullet_index"`
	Text            string `json:"text"`
}

func (h *ResumeHandler) ApplyBullet(c fiber.Ctx) error {
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	var req applyBulletRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	if err := f.ApplyImprovedBullet(req.ExperienceIndex, req.BulletIndex, req.Text); err != nil {
		return resumeFlowError(err)
	}
	if err := h.flows.Put(c.Context(), resumeKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist resume flow", err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, f.Parsed)
}

type jobDescRequest struct {
	JobDescription string `json:"job_description"`
}

func (h *ResumeHandler) ImproveExperience(c fiber.Ctx) error {
	if err := h.requireGraph(); err != nil {
		return err
	}
	if _, err := h.load(c.Context(), c.Params("id")); err != nil {
		return err
	}
	var req jobDescRequest
	if err := c.Bind().Body(&req); err != nil || req.JobDescription == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description is required", err)
	}
	bullets, err := h.graph.ImproveExperience(c.Context(), req.JobDescription)
	if err != nil {
		return graphError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"responsibilities": bullets})
}

func (h *ResumeHandler) GenerateSummary(c fiber.Ctx) error {
	if err := h.requireGraph(); err != nil {
		return err
	}
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	var req jobDescRequest
	if err := c.Bind().Body(&req); err != nil || req.JobDescription == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description is required", err)
	}

	summary, err := h.graph.GenerateSummary(c.Context(), req.JobDescription)
	if err != nil {
		return graphError(err)
	}
	if err := f.SetSummary(summary); err != nil {
		return resumeFlowError(err)
	}
	if err := h.flows.Put(c.Context(), resumeKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist resume flow", err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"summary": summary})
}

type experienceDescRequest struct {
	ExperienceDesc string `json:"experience_desc"`
}

func (h *ResumeHandler) BuildExperience(c fiber.Ctx) error {
	if err := h.requireGraph(); err != nil {
		return err
	}
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	var req experienceDescRequest
	if err := c.Bind().Body(&req); err != nil || req.ExperienceDesc == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Experience description is required", err)
	}

	exp, err := h.graph.BuildExperience(c.Context(), req.ExperienceDesc)
	if err != nil {
		return graphError(err)
	}
	if err := f.AddExperience(exp); err != nil {
		return resumeFlowError(err)
	}
	if err := h.flows.Put(c.Context(), resumeKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist resume flow", err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, f.Parsed)
}

func (h *ResumeHandler) GenerateProject(c fiber.Ctx) error {
	if err := h.requireGraph(); err != nil {
		return err
	}
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	var req jobDescRequest
	if err := c.Bind().Body(&req); err != nil || req.JobDescription == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description is required", err)
	}

	project, err := h.graph.GenerateProject(c.Context(), req.JobDescription)
	if err != nil {
		return graphError(err)
	}
	if err := f.AddProject(project); err != nil {
		return resumeFlowError(err)
	}
	if err := h.flows.Put(c.Context(), resumeKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist resume flow", err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, f.Parsed)
}

func (h *ResumeHandler) GenerateSkills(c fiber.Ctx) error {
	if err := h.requireGraph(); err != nil {
		return err
	}
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	var req jobDescRequest
	if err := c.Bind().Body(&req); err != nil || req.JobDescription == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description is required", err)
	}

	skills, err := h.graph.GenerateSkills(c.Context(), req.JobDescription)
	if err != nil {
		return graphError(err)
	}
	if err := f.MergeSkills(skills); err != nil {
		return resumeFlowError(err)
	}
	if err := h.flows.Put(c.Context(), resumeKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist resume flow", err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"skills": f.Parsed.Skills})
}

type saveResumeRequest struct {
	Title    string `json:"title"`
	FormatID *int   `json:"format_id"`
}

// Save serializes the edited resume and persists it through the backend. The
// flow passes through Saving and settles back into Editing whether the save
// landed or not.
func (h *ResumeHandler) Save(c fiber.Ctx) error {
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	var req saveResumeRequest
	if err := c.Bind().Body(&req); err != nil || req.Title == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "A resume title is required", err)
	}

	if err := f.BeginSave(req.Title); err != nil {
		return resumeFlowError(err)
	}

	sc := session.FromRequest(c)
	profile, rerr := h.relay.Profile(c.Context(), sc)
	if rerr != nil {
		_ = f.Settle()
		return rerr
	}

	data, err := json.Marshal(f.Parsed)
	if err != nil {
		_ = f.Settle()
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot serialize resume", err)
	}

	stored, rerr := h.relay.SaveResume(c.Context(), sc, profile.ID, req.Title, string(data), req.FormatID)
	_ = f.Settle()
	if putErr := h.flows.Put(c.Context(), resumeKey(f.ID), f, 0); putErr != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist resume flow", putErr)
	}
	if rerr != nil {
		return rerr
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, stored)
}

func (h *ResumeHandler) List(c fiber.Ctx) error {
	sc := session.FromRequest(c)
	profile, rerr := h.relay.Profile(c.Context(), sc)
	if rerr != nil {
		return rerr
	}
	items, rerr := h.relay.UserResumes(c.Context(), sc, profile.ID)
	if rerr != nil {
		return rerr
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ResumeHandler) Rename(c fiber.Ctx) error {
	resumeID, err := strconv.Atoi(c.Params("resumeID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", err)
	}
	title := c.Query("title")

	sc := session.FromRequest(c)
	if rerr := h.relay.RenameResume(c.Context(), sc, resumeID, title); rerr != nil {
		return rerr
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ResumeHandler) Delete(c fiber.Ctx) error {
	resumeID, err := strconv.Atoi(c.Params("resumeID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", err)
	}

	sc := session.FromRequest(c)
	if rerr := h.relay.DeleteResume(c.Context(), sc, resumeID); rerr != nil {
		return rerr
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

type updateTemplateRequest struct {
	Template string `json:"template"`
	ResumeID int    `json:"resume_id"`
}

func (h *ResumeHandler) UpdateTemplate(c fiber.Ctx) error {
	var req updateTemplateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	sc := session.FromRequest(c)
	if rerr := h.relay.UpdateResumeTemplate(c.Context(), sc, req.Template, req.ResumeID); rerr != nil {
		return rerr
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ResumeHandler) load(ctx context.Context, id string) (*flow.ResumeFlow, error) {
	if id == "" {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Resume flow id is required", nil)
	}
	var f flow.ResumeFlow
	found, err := h.flows.Get(ctx, resumeKey(id), &f)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusInternalServerError, "Cannot load resume flow", err)
	}
	if !found {
		return nil, middleware.NewAppError(fiber.StatusNotFound, "Resume flow not found", nil)
	}
	return &f, nil
}

func resumeFlowError(err error) error {
	switch {
	case errors.Is(err, flow.ErrBulletIndex):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, flow.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

func graphError(err error) error {
	if errors.Is(err, graph.ErrUnrecognizedShape) {
		return middleware.NewAppError(fiber.StatusBadGateway, "AI service returned an unexpected response", err)
	}
	return middleware.NewAppError(fiber.StatusBadGateway, "AI service request failed", err)
}
