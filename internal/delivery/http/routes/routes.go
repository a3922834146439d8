package routes

import (
	"github.com/gofiber/fiber/v3"

	"hirehack/internal/delivery/http/handler"
	"hirehack/internal/ws"
)

// Deps carries everything the route tree needs; the app container fills it
// during bootstrap.
type Deps struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Quiz      *handler.QuizHandler
	Resume    *handler.ResumeHandler
	Jobs      *handler.JobsHandler
	Complaint *handler.ComplaintHandler
	Payment   *handler.PaymentHandler
	Interview *handler.InterviewHandler
	Health    *handler.HealthHandler
	Pages     *handler.PagesHandler
	WS        *ws.Handler
}

type Registry struct {
	deps Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.deps.Health.RegisterRoutes(app)
	r.deps.Pages.RegisterRoutes(app)

	api := app.Group("/api")
	r.deps.Auth.RegisterRoutes(api.Group("/auth"))
	r.deps.User.RegisterRoutes(api.Group("/users"))
	r.deps.Quiz.RegisterRoutes(api.Group("/quiz"))
	r.deps.Resume.RegisterRoutes(api.Group("/resumes"))
	r.deps.Jobs.RegisterRoutes(api.Group("/jobs"))
	r.deps.Complaint.RegisterRoutes(api.Group("/complaints"))
	r.deps.Payment.RegisterRoutes(api.Group("/payment"))
	r.deps.Interview.RegisterRoutes(api.Group("/interview"))

	// OAuth providers redirect here, outside the /api/auth group.
	api.Get("/callback", r.deps.Auth.Callback)
	api.Post("/subscription/cancel", r.deps.User.CancelSubscription)

	if r.deps.WS != nil {
		app.Get("/ws/interview/:id", r.deps.WS.HandleInterviewWS)
	}
}
