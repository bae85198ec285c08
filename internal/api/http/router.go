package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-portal/internal/api/http/handlers"
	"github.com/spec-kit/campus-portal/internal/auth"
	"github.com/spec-kit/campus-portal/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Pages     *handlers.PagesHandler
	Auth      *handlers.AuthHandler
	Events    *handlers.EventsHandler
	Notices   *handlers.NoticesHandler
	Resources *handlers.ResourcesHandler
	Admin     *handlers.AdminHandler
	Session   fiber.Handler
	Guard     *auth.Guard
}

// RegisterRoutes wires HTTP routes. Guards are attached per route so that a
// role restriction never leaks onto a sibling path.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Use(cfg.Session)

	app.Get("/", cfg.Pages.Home)
	app.Get("/login", cfg.Auth.LoginPage)
	app.Post("/login", cfg.Auth.Login)
	app.Get("/register", cfg.Auth.RegisterPage)
	app.Post("/register", cfg.Auth.Register)
	app.Post("/logout", cfg.Auth.Logout)
	app.Get(auth.UnauthorizedPath, cfg.Pages.Unauthorized)

	member := cfg.Guard.RequireAuthenticated()
	app.Get("/dashboard", member, cfg.Pages.Dashboard)
	app.Get("/events", member, cfg.Events.List)
	app.Get("/notices", member, cfg.Notices.List)
	app.Get("/resources", member, cfg.Resources.List)

	faculty := cfg.Guard.Require(auth.RolesOnly(domain.RoleFaculty))
	app.Get("/faculty", faculty, cfg.Pages.Faculty)
	app.Get("/events/create", faculty, cfg.Events.CreatePage)
	app.Post("/events/create", faculty, cfg.Events.Create)
	app.Get("/notices/create", faculty, cfg.Notices.CreatePage)
	app.Post("/notices/create", faculty, cfg.Notices.Create)
	app.Get("/resources/upload", faculty, cfg.Resources.UploadPage)
	app.Post("/resources/upload", faculty, cfg.Resources.Upload)

	admin := cfg.Guard.Require(auth.RolesOnly(domain.RoleAdmin))
	app.Get("/admin", admin, cfg.Admin.Panel)
	app.Post("/admin/users/:id/delete", admin, cfg.Admin.Delete)
	app.Post("/admin/users/:id/role", admin, cfg.Admin.ChangeRole)

	app.Use(cfg.Pages.NotFound)
}
