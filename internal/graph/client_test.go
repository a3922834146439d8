package graph

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func graphServer(t *testing.T, wantGraph string, response string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/runs/wait" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Api-Key"); got != "test-key" {
			t.Fatalf("api key = %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		var req struct {
			AssistantID string          `json:"assistant_id"`
			Input       json.RawMessage `json:"input"`
		}
		if err := json.Unmarshal(raw, &req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.AssistantID != wantGraph {
			t.Fatalf("assistant_id = %q, want %q", req.AssistantID, wantGraph)
		}
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", nil)
}

func TestParseResume(t *testing.T) {
	c := graphServer(t, ResumeParser, `{
		"name": "Alice",
		"email": "alice@example.com",
		"summary": "Backend engineer.",
		"experiences": [{"company_name": "Acme", "role": "Dev", "bulletin": ["built services"]}],
		"skills": ["Go"]
	}`)

	parsed, err := c.ParseResume(context.Background(), "raw resume text")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Name != "Alice" || len(parsed.Experiences) != 1 {
		t.Fatalf("parsed = %+v", parsed)
	}
}

func TestParseResumeEmptyShape(t *testing.T) {
	c := graphServer(t, ResumeParser, `{}`)
	_, err := c.ParseResume(context.Background(), "text")
	if !errors.Is(err, ErrUnrecognizedShape) {
		t.Fatalf("err = %v", err)
	}
}

func TestImproveText(t *testing.T) {
	c := graphServer(t, ResumeImprover, `{
		"improve_version": {
			"improve_version1": "professional",
			"improve_version2": "achievement",
			"improve_version3": "ats"
		}
	}`)

	v, err := c.ImproveText(context.Background(), "built things")
	if err != nil {
		t.Fatalf("improve: %v", err)
	}
	if v.Version1 != "professional" || v.Version2 != "achievement" || v.Version3 != "ats" {
		t.Fatalf("versions = %+v", v)
	}
}

func TestImproveTextMissingVersions(t *testing.T) {
	c := graphServer(t, ResumeImprover, `{"improve_version": {}}`)
	if _, err := c.ImproveText(context.Background(), "x"); !errors.Is(err, ErrUnrecognizedShape) {
		t.Fatalf("err = %v", err)
	}
}

func TestGenerateSummary(t *testing.T) {
	c := graphServer(t, SummaryBuilder, `{"generated_summary": "Seasoned Go engineer."}`)
	summary, err := c.GenerateSummary(context.Background(), "Go backend role")
	if err != nil || summary != "Seasoned Go engineer." {
		t.Fatalf("summary = %q err = %v", summary, err)
	}
}

func TestImproveExperience(t *testing.T) {
	c := graphServer(t, ExpImprover, `{"responsibilities": ["did a", "did b"]}`)
	bullets, err := c.ImproveExperience(context.Background(), "job desc")
	if err != nil || len(bullets) != 2 {
		t.Fatalf("bullets = %v err = %v", bullets, err)
	}
}

func TestBuildExperience(t *testing.T) {
	c := graphServer(t, ExperienceBuilder, `{
		"experience": {"company_name": "Acme", "role": "Dev", "bulletin": ["shipped"]}
	}`)
	exp, err := c.BuildExperience(context.Background(), "worked at acme")
	if err != nil || exp.CompanyName != "Acme" {
		t.Fatalf("experience = %+v err = %v", exp, err)
	}
}

func TestGenerateProjectAndSkills(t *testing.T) {
	c := graphServer(t, ProjectGen, `{"project": {"name": "CLI tool", "roles": ["author"]}}`)
	project, err := c.GenerateProject(context.Background(), "job desc")
	if err != nil || project.Name != "CLI tool" {
		t.Fatalf("project = %+v err = %v", project, err)
	}

	c = graphServer(t, SkillsGen, `{"skills": ["Go", "Postgres"]}`)
	skills, err := c.GenerateSkills(context.Background(), "job desc")
	if err != nil || len(skills) != 2 {
		t.Fatalf("skills = %v err = %v", skills, err)
	}
}

func TestQuizQuestions(t *testing.T) {
	c := graphServer(t, QuizAgent, `{
		"questions": [{"question": "q1", "options": ["a", "b"], "answer": "a"}]
	}`)
	questions, err := c.QuizQuestions(context.Background(), "Backend Engineer", "Go services", 1)
	if err != nil || len(questions) != 1 {
		t.Fatalf("questions = %v err = %v", questions, err)
	}
	if questions[0].Answer != "a" {
		t.Fatalf("answer = %q", questions[0].Answer)
	}
}

func TestGraphErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream blew up"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", nil)
	if _, err := c.GenerateSummary(context.Background(), "x"); err == nil {
		t.Fatalf("expected error on non-200")
	}
}
