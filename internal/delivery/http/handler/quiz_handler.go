package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"hirehack/internal/delivery/http/middleware"
	"hirehack/internal/domain/quiz"
	"hirehack/internal/flow"
	"hirehack/internal/flow/store"
	"hirehack/internal/pkg/response"
	"hirehack/internal/relay"
	"hirehack/internal/session"
)

type QuizHandler struct {
	relay *relay.Client
	flows store.Store
}

func NewQuizHandler(relayClient *relay.Client, flows store.Store) *QuizHandler {
	return &QuizHandler{relay: relayClient, flows: flows}
}

func (h *QuizHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/start", h.Start)
	r.Post("/:id/answer", h.Answer)
	r.Get("/:id/results", h.Results)
	r.Post("/:id/reset", h.Reset)
}

func quizKey(id string) string { return "flow:quiz:" + id }

type quizStartRequest struct {
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	NumQuiz        int    `json:"num_quiz"`
}

// Start gates on the subscription tier, generates the question set through
// the backend agent, and opens a quiz flow. Clients get the questions with
// the answers stripped; correctness is checked here per submission.
func (h *QuizHandler) Start(c fiber.Ctx) error {
	var req quizStartRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	if req.NumQuiz <= 0 {
		req.NumQuiz = 5
	}

	sc := session.FromRequest(c)
	profile, rerr := h.relay.Profile(c.Context(), sc)
	if rerr != nil {
		return rerr
	}
	if !profile.CanStartQuiz() {
		return middleware.NewAppError(fiber.StatusForbidden, flow.ErrSubscriptionRequired.Error(), nil)
	}

	payload, rerr := h.relay.GenerateQuiz(c.Context(), sc, req.JobTitle, req.JobDescription, req.NumQuiz)
	if rerr != nil {
		return rerr
	}

	f := flow.NewQuizFlow(uuid.NewString())
	settings := flow.QuizSettings{
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		NumQuestions:   req.NumQuiz,
	}
	if err := f.Start(profile, settings, payload.Questions); err != nil {
		return quizFlowError(err)
	}
	if err := h.flows.Put(c.Context(), quizKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist quiz", err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"id":        f.ID,
		"state":     f.State.String(),
		"questions": quiz.Sanitize(f.Questions),
	})
}

type quizAnswerRequest struct {
	Index  int    `json:"index"`
	Choice string `json:"choice"`
}

// Answer records one choice and returns its correctness right away, together
// with the correct option for feedback.
func (h *QuizHandler) Answer(c fiber.Ctx) error {
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	var req quizAnswerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	correct, ferr := f.Answer(req.Index, req.Choice)
	if ferr != nil {
		return quizFlowError(ferr)
	}
	if err := h.flows.Put(c.Context(), quizKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist quiz", err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"correct": correct,
		"answer":  f.Questions[req.Index].Answer,
	})
}

// Results closes the quiz and reports the score with per-question
// correctness. Results stay available until an explicit reset.
func (h *QuizHandler) Results(c fiber.Ctx) error {
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	score, ferr := f.Finish()
	if ferr != nil {
		return quizFlowError(ferr)
	}
	if err := h.flows.Put(c.Context(), quizKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist quiz", err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"state":       f.State.String(),
		"score":       score,
		"correctness": f.Correctness(),
		"questions":   f.Questions,
		"answers":     f.Answers,
	})
}

func (h *QuizHandler) Reset(c fiber.Ctx) error {
	f, err := h.load(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	f.Reset()
	if err := h.flows.Put(c.Context(), quizKey(f.ID), f, 0); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Cannot persist quiz", err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"state": f.State.String()})
}

func (h *QuizHandler) load(ctx context.Context, id string) (*flow.QuizFlow, error) {
	if id == "" {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Quiz id is required", nil)
	}
	var f flow.QuizFlow
	found, err := h.flows.Get(ctx, quizKey(id), &f)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusInternalServerError, "Cannot load quiz", err)
	}
	if !found {
		return nil, middleware.NewAppError(fiber.StatusNotFound, "Quiz not found", nil)
	}
	return &f, nil
}

func quizFlowError(err error) error {
	switch {
	case errors.Is(err, flow.ErrSubscriptionRequired):
		return middleware.NewAppError(fiber.StatusForbidden, err.Error(), nil)
	case errors.Is(err, flow.ErrQuizSettingsIncomplete), errors.Is(err, flow.ErrQuestionIndex):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, flow.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
