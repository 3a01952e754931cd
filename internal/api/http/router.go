package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-case-service/internal/api/http/handlers"
	"github.com/spec-kit/legal-case-service/internal/auth"
	"github.com/spec-kit/legal-case-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Clients    *handlers.ClientsHandler
	Processes  *handlers.ProcessesHandler
	Tasks      *handlers.TasksHandler
	Agenda     *handlers.AgendaHandler
	Dashboard  *handlers.DashboardHandler
	Middleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Every protected route declares its own
// role allow-list; an empty list admits any authenticated user.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.Middleware.Authenticate)
	authProtected.Get("/profile", cfg.Auth.Profile)
	authProtected.Put("/password", cfg.Auth.UpdatePassword)
	authProtected.Get("/verify", cfg.Auth.Verify)
	authProtected.Post("/register", auth.RequireRoles(domain.RoleAdmin), cfg.Auth.Register)

	users := api.Group("/users", cfg.Middleware.Authenticate)
	users.Get("/", cfg.Auth.ListUsers)

	clients := api.Group("/clients", cfg.Middleware.Authenticate)
	clients.Get("/", cfg.Clients.List)
	clients.Get("/:id", cfg.Clients.Get)
	clients.Post("/", auth.RequireRoles(domain.RoleAdmin, domain.RoleAdvogado), cfg.Clients.Create)
	clients.Put("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleAdvogado), cfg.Clients.Update)
	clients.Delete("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleAdvogado), cfg.Clients.Delete)

	processes := api.Group("/processes", cfg.Middleware.Authenticate)
	processes.Get("/", cfg.Processes.List)
	processes.Get("/:id", cfg.Processes.Get)
	processes.Post("/", auth.RequireRoles(domain.RoleAdmin, domain.RoleAdvogado), cfg.Processes.Create)
	processes.Put("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleAdvogado), cfg.Processes.Update)
	processes.Delete("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleAdvogado), cfg.Processes.Delete)

	tasks := api.Group("/tasks", cfg.Middleware.Authenticate)
	tasks.Get("/", cfg.Tasks.List)
	tasks.Post("/", cfg.Tasks.Create)
	tasks.Put("/:id", cfg.Tasks.Update)

	audiences := api.Group("/audiences", cfg.Middleware.Authenticate)
	audiences.Get("/", cfg.Agenda.ListAudiences)
	audiences.Post("/", cfg.Agenda.CreateAudience)

	deadlines := api.Group("/deadlines", cfg.Middleware.Authenticate)
	deadlines.Get("/", cfg.Agenda.ListDeadlines)
	deadlines.Post("/", cfg.Agenda.CreateDeadline)

	movements := api.Group("/movements", cfg.Middleware.Authenticate)
	movements.Get("/", cfg.Agenda.ListMovements)
	movements.Post("/", cfg.Agenda.CreateMovement)

	api.Get("/dashboard", cfg.Middleware.Authenticate, cfg.Dashboard.Stats)

	app.Use(NotFoundHandler)
}
