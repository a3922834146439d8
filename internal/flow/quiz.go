package flow

import (
	"errors"
	"math"

	"hirehack/internal/domain/quiz"
	"hirehack/internal/domain/user"
)

// QuizState enumerates the quiz flow's states.
type QuizState int

const (
	QuizSetup QuizState = iota
	QuizInProgress
	QuizResults
)

func (s QuizState) String() string {
	switch s {
	case QuizSetup:
		return "setup"
	case QuizInProgress:
		return "in_progress"
	case QuizResults:
		return "results"
	default:
		return "unknown"
	}
}

var (
	// ErrSubscriptionRequired gates quiz starts on a non-trial plan.
	ErrSubscriptionRequired = errors.New("an active subscription is required to start a quiz")
	// ErrQuizSettingsIncomplete rejects a start without topic and description.
	ErrQuizSettingsIncomplete = errors.New("job title and description are required")
	// ErrQuestionIndex rejects answers outside the question set.
	ErrQuestionIndex = errors.New("question index out of range")
)

// QuizSettings is the user's quiz setup input.
type QuizSettings struct {
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	NumQuestions   int    `json:"num_questions"`
}

// QuizFlow is one quiz session: Setup -> InProgress -> Results, with Reset
// returning to Setup. Destroyed on reset or expiry, never persisted to the
// backend.
type QuizFlow struct {
	ID        string          `json:"id"`
	State     QuizState       `json:"state"`
	Settings  QuizSettings    `json:"settings"`
	Questions []quiz.Question `json:"questions"`
	Answers   []string        `json:"answers"`
	Current   int             `json:"current"`
	Score     float64         `json:"score"`
}

func NewQuizFlow(id string) *QuizFlow {
	return &QuizFlow{ID: id, State: QuizSetup}
}

// Start moves Setup -> InProgress. Gated on a non-trial subscription and
// complete settings; the generated questions (answers included) stay
// server-side for local scoring.
func (f *QuizFlow) Start(profile user.Profile, settings QuizSettings, questions []quiz.Question) error {
	if f.State != QuizSetup {
		return transitionError("quiz", f.State.String(), "start")
	}
	if !profile.CanStartQuiz() {
		return ErrSubscriptionRequired
	}
	if settings.JobTitle == "" || settings.JobDescription == "" {
		return ErrQuizSettingsIncomplete
	}

	f.Settings = settings
	f.Questions = questions
	f.Answers = make([]string, len(questions))
	f.Current = 0
	f.Score = 0
	f.State = QuizInProgress
	return nil
}

// Answer records the choice for one question and reports its correctness
// immediately. No backend round trip happens per question.
func (f *QuizFlow) Answer(index int, choice string) (bool, error) {
	if f.State != QuizInProgress {
		return false, transitionError("quiz", f.State.String(), "answer")
	}
	if index < 0 || index >= len(f.Questions) {
		return false, ErrQuestionIndex
	}

	f.Answers[index] = choice
	if index+1 > f.Current {
		f.Current = index + 1
	}
	return f.Questions[index].Answer == choice, nil
}

// Finish moves InProgress -> Results and fixes the score. Calling it again in
// Results is a no-op returning the same score.
func (f *QuizFlow) Finish() (float64, error) {
	switch f.State {
	case QuizResults:
		return f.Score, nil
	case QuizInProgress:
		f.Score = computeScore(f.Questions, f.Answers)
		f.State = QuizResults
		return f.Score, nil
	default:
		return 0, transitionError("quiz", f.State.String(), "finish")
	}
}

// Reset returns the flow to Setup, discarding questions and answers.
func (f *QuizFlow) Reset() {
	*f = QuizFlow{ID: f.ID, State: QuizSetup}
}

// Correctness reports, per question, whether the recorded answer matched.
func (f *QuizFlow) Correctness() []bool {
	out := make([]bool, len(f.Questions))
	for i, q := range f.Questions {
		if i < len(f.Answers) {
			out[i] = f.Answers[i] == q.Answer
		}
	}
	return out
}

// computeScore is correct/N * 100, rounded to two decimals.
func computeScore(questions []quiz.Question, answers []string) float64 {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.Answer {
			correct++
		}
	}
	score := float64(correct) / float64(len(questions)) * 100
	return math.Round(score*100) / 100
}
