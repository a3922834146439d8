package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"hirehack/internal/delivery/http/middleware"
	"hirehack/internal/flow/store"
	"hirehack/internal/graph"
)

func resumeApp(t *testing.T, backend http.HandlerFunc, graphClient *graph.Client) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewResumeHandler(backendStub(t, backend), graphClient, store.NewMemory()).RegisterRoutes(app.Group("/api/resumes"))
	return app
}

func resumeBackend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/ai/agent/resume/create-resume":
			w.Write([]byte(`{"name":"Alice","summary":"Drafted for the role","skills":["go","sql"]}`))
		case "/api/ai/agent/generate/resume":
			w.Write([]byte(`{"name":"Bob","summary":"Generated","experiences":[{"company_name":"Acme","role":"Dev","bulletin":["shipped"]}]}`))
		}
	}
}

func decodeFlowEnvelope(t *testing.T, resp *http.Response) (string, string) {
	t.Helper()
	var envelope struct {
		Data struct {
			ID     string `json:"id"`
			State  string `json:"state"`
			Resume struct {
				Name string `json:"name"`
			} `json:"resume"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return envelope.Data.ID, envelope.Data.State
}

func TestResumeBuildOpensEditorFlow(t *testing.T) {
	app := resumeApp(t, resumeBackend(), nil)

	resp, err := app.Test(postJSON("/api/resumes/build", `{"role":"Backend Engineer","job_description":"Go services"}`))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	id, state := decodeFlowEnvelope(t, resp)
	if id == "" || state != "editing" {
		t.Fatalf("id=%q state=%q", id, state)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/resumes/"+id, nil))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	if _, state = decodeFlowEnvelope(t, resp); state != "editing" {
		t.Fatalf("reloaded state = %q", state)
	}
}

func TestResumeBuildRequiresRoleAndDescription(t *testing.T) {
	app := resumeApp(t, resumeBackend(), nil)

	resp, err := app.Test(postJSON("/api/resumes/build", `{"role":"Backend Engineer"}`))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestResumeGenerateOpensEditorFlow(t *testing.T) {
	app := resumeApp(t, resumeBackend(), nil)

	resp, err := app.Test(postJSON("/api/resumes/generate", `{"name":"Bob","email":"bob@example.com","skills_description":"Go, SQL"}`))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if id, state := decodeFlowEnvelope(t, resp); id == "" || state != "editing" {
		t.Fatalf("id=%q state=%q", id, state)
	}
}

func TestResumeGenerateRequiresName(t *testing.T) {
	app := resumeApp(t, resumeBackend(), nil)

	resp, err := app.Test(postJSON("/api/resumes/generate", `{"email":"bob@example.com"}`))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

// Deployments without a graph runtime answer AI-backed routes with 503
// instead of dereferencing a nil client.
func TestResumeUploadWithoutGraphUnavailable(t *testing.T) {
	app := resumeApp(t, resumeBackend(), nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "cv.pdf")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	part.Write([]byte("raw bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestResumeImproveWithoutGraphUnavailable(t *testing.T) {
	app := resumeApp(t, resumeBackend(), nil)

	resp, err := app.Test(postJSON("/api/resumes/some-id/improve", `{"text":"Did things"}`))
	if err != nil {
		t.Fatalf("improve: %v", err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
