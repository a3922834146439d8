package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"hirehack/internal/domain/quiz"
	"hirehack/internal/domain/user"
)

func activeProfile() user.Profile {
	return user.Profile{ID: 1, Username: "alice", SubscriptionStatus: user.SubscriptionActive}
}

func threeQuestions() []quiz.Question {
	return []quiz.Question{
		{Question: "q1", Options: []string{"a", "b"}, Answer: "a"},
		{Question: "q2", Options: []string{"a", "b"}, Answer: "b"},
		{Question: "q3", Options: []string{"a", "b"}, Answer: "a"},
	}
}

func startedQuiz(t *testing.T) *QuizFlow {
	t.Helper()
	f := NewQuizFlow("qf1")
	settings := QuizSettings{JobTitle: "Backend Engineer", JobDescription: "Go services", NumQuestions: 3}
	if err := f.Start(activeProfile(), settings, threeQuestions()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return f
}

func TestQuizStartRequiresSubscription(t *testing.T) {
	f := NewQuizFlow("qf1")
	trial := user.Profile{ID: 1, SubscriptionStatus: user.SubscriptionFreeTrial}
	settings := QuizSettings{JobTitle: "Backend Engineer", JobDescription: "Go services", NumQuestions: 3}

	err := f.Start(trial, settings, threeQuestions())
	if !errors.Is(err, ErrSubscriptionRequired) {
		t.Fatalf("expected ErrSubscriptionRequired, got %v", err)
	}
	if f.State != QuizSetup {
		t.Fatalf("state changed on rejected start: %v", f.State)
	}
}

func TestQuizStartRequiresSettings(t *testing.T) {
	f := NewQuizFlow("qf1")
	err := f.Start(activeProfile(), QuizSettings{JobTitle: "", JobDescription: "x", NumQuestions: 3}, threeQuestions())
	if !errors.Is(err, ErrQuizSettingsIncomplete) {
		t.Fatalf("expected ErrQuizSettingsIncomplete, got %v", err)
	}
}

func TestQuizAnswerAndScore(t *testing.T) {
	f := startedQuiz(t)

	correct, err := f.Answer(0, "a")
	if err != nil || !correct {
		t.Fatalf("answer 0: correct=%v err=%v", correct, err)
	}
	correct, err = f.Answer(1, "a")
	if err != nil || correct {
		t.Fatalf("answer 1: correct=%v err=%v", correct, err)
	}
	correct, err = f.Answer(2, "a")
	if err != nil || !correct {
		t.Fatalf("answer 2: correct=%v err=%v", correct, err)
	}

	score, err := f.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if f.State != QuizResults {
		t.Fatalf("state after finish: %v", f.State)
	}
	require.InDelta(t, 66.67, score, 0.001)

	want := []bool{true, false, true}
	got := f.Correctness()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("correctness[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQuizAnswerIndexOutOfRange(t *testing.T) {
	f := startedQuiz(t)
	if _, err := f.Answer(5, "a"); !errors.Is(err, ErrQuestionIndex) {
		t.Fatalf("expected ErrQuestionIndex, got %v", err)
	}
}

func TestQuizFinishIdempotentInResults(t *testing.T) {
	f := startedQuiz(t)
	if _, err := f.Answer(0, "a"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	first, err := f.Finish()
	if err != nil {
		t.Fatalf("first finish: %v", err)
	}
	second, err := f.Finish()
	if err != nil {
		t.Fatalf("second finish: %v", err)
	}
	if first != second {
		t.Fatalf("score changed on repeated finish: %v -> %v", first, second)
	}
}

func TestQuizAnswerAfterFinishRejected(t *testing.T) {
	f := startedQuiz(t)
	if _, err := f.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if _, err := f.Answer(0, "a"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestQuizReset(t *testing.T) {
	f := startedQuiz(t)
	if _, err := f.Answer(0, "a"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := f.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}

	f.Reset()
	if f.State != QuizSetup {
		t.Fatalf("state after reset: %v", f.State)
	}
	if len(f.Questions) != 0 || len(f.Answers) != 0 || f.Score != 0 {
		t.Fatalf("reset left data behind: %+v", f)
	}
}
