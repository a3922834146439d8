package relay

import (
	"context"
	"net/http"

	"hirehack/internal/domain/quiz"
	"hirehack/internal/session"
)

type generateQuizRequest struct {
	JobTitle       string `json:"job_title"`
	NumQuiz        int    `json:"num_quiz"`
	JobDescription string `json:"job_description"`
}

// GenerateQuiz asks the backend quiz agent for a question set. The returned
// questions include the correct answers; scoring happens in the gateway
// without further round trips.
func (c *Client) GenerateQuiz(ctx context.Context, sc session.Context, jobTitle, jobDescription string, numQuiz int) (quiz.Payload, *Error) {
	if jobTitle == "" || jobDescription == "" {
		return quiz.Payload{}, newError(KindValidation, 0, "job title and description are required", nil)
	}
	if numQuiz <= 0 {
		return quiz.Payload{}, newError(KindValidation, 0, "question count must be positive", nil)
	}

	var payload quiz.Payload
	rerr := c.doJSON(ctx, sc, http.MethodPost, "/api/ai/agent/quiz/generate", generateQuizRequest{
		JobTitle:       jobTitle,
		NumQuiz:        numQuiz,
		JobDescription: jobDescription,
	}, &payload)
	if rerr != nil {
		return quiz.Payload{}, rerr
	}
	if len(payload.Questions) == 0 {
		return quiz.Payload{}, newError(KindUpstream, 0, "quiz agent returned no questions", nil)
	}
	return payload, nil
}
