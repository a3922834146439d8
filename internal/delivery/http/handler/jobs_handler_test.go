package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"hirehack/internal/delivery/http/middleware"
	"hirehack/internal/relay"
)

func jobsApp(t *testing.T, backend http.HandlerFunc) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewJobsHandler(backendStub(t, backend)).RegisterRoutes(app.Group("/api/jobs"))
	return app
}

type jobsEnvelope struct {
	Message string `json:"message"`
	Data    struct {
		Jobs       []json.RawMessage `json:"jobs"`
		Total      int               `json:"total"`
		Page       int               `json:"page"`
		TotalPages int               `json:"total_pages"`
	} `json:"data"`
}

func searchJobs(t *testing.T, app *fiber.App, query string) (int, jobsEnvelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/jobs/search?"+query, nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	var envelope jobsEnvelope
	if resp.StatusCode == fiber.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp.StatusCode, envelope
}

func TestJobSearchNoResults(t *testing.T) {
	app := jobsApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[],"total":0}`))
	})

	status, envelope := searchJobs(t, app, "job_title=Go+Developer")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if envelope.Message != "No jobs found matching your criteria." {
		t.Fatalf("message = %q", envelope.Message)
	}
	if envelope.Data.Total != 0 || envelope.Data.TotalPages != 0 || len(envelope.Data.Jobs) != 0 {
		t.Fatalf("data = %+v", envelope.Data)
	}
}

func TestJobSearchPaging(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"success":true,"data":[`)
	for i := 0; i < 23; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"title":"Job %d","company_name":"Acme"}`, i)
	}
	sb.WriteString(`],"total":23}`)

	app := jobsApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sb.String()))
	})

	_, envelope := searchJobs(t, app, "job_title=Go+Developer&page=3")
	if envelope.Data.Total != 23 || envelope.Data.TotalPages != 3 || envelope.Data.Page != 3 {
		t.Fatalf("data = %+v", envelope.Data)
	}
	if len(envelope.Data.Jobs) != 3 {
		t.Fatalf("page 3 should have the 3 leftover jobs, got %d", len(envelope.Data.Jobs))
	}

	// A page past the end clamps to the last page.
	_, envelope = searchJobs(t, app, "job_title=Go+Developer&page=9")
	if envelope.Data.Page != 3 || len(envelope.Data.Jobs) != 3 {
		t.Fatalf("clamped page = %+v", envelope.Data)
	}

	// First page holds exactly the per-page count.
	_, envelope = searchJobs(t, app, "job_title=Go+Developer")
	if envelope.Data.Page != 1 || len(envelope.Data.Jobs) != 10 {
		t.Fatalf("first page = %+v", envelope.Data)
	}
}

func TestJobSearchRequiresTitle(t *testing.T) {
	app := jobsApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("backend should not be called")
	})

	status, _ := searchJobs(t, app, "skills_desc=golang")
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
}

func TestJobSearchBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewJobsHandler(relay.NewClient(srv.URL, time.Second, nil)).RegisterRoutes(app.Group("/api/jobs"))

	status, _ := searchJobs(t, app, "job_title=Go+Developer")
	if status != fiber.StatusBadGateway {
		t.Fatalf("status = %d", status)
	}
}
