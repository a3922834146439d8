package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"hirehack/internal/config"
	"hirehack/internal/delivery/http/handler"
	"hirehack/internal/delivery/http/middleware"
	"hirehack/internal/delivery/http/routes"
	"hirehack/internal/ws"
)

type App struct {
	Fiber *fiber.App
}

func New(container *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: container.Config.App.AppName,
	})

	registerGlobalMiddleware(f, container)
	registerRoutes(f, container)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, container *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(container.Logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(container.Logger).Middleware())
	app.Use(middleware.NewSessionGuard().Middleware())
}

func registerRoutes(app *fiber.App, container *Container) {
	if app == nil {
		return
	}

	cfg := container.Config
	deps := routes.Deps{
		Auth:      handler.NewAuthHandler(container.Relay, cfg.App),
		User:      handler.NewUserHandler(container.Relay),
		Quiz:      handler.NewQuizHandler(container.Relay, container.Flows),
		Resume:    handler.NewResumeHandler(container.Relay, container.Graph, container.Flows),
		Jobs:      handler.NewJobsHandler(container.Relay),
		Complaint: handler.NewComplaintHandler(container.Relay),
		Payment:   handler.NewPaymentHandler(container.Relay),
		Interview: handler.NewInterviewHandler(cfg.Interview, container.Flows, container.Hub),
		Health:    handler.NewHealthHandler(cfg.App.AppName, cfg.App.Environment),
		Pages:     handler.NewPagesHandler(),
		WS:        ws.NewHandler(container.Hub, container.Logger),
	}

	routes.NewRegistry(deps).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
