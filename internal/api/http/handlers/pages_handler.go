package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-portal/internal/observability"
	"github.com/spec-kit/campus-portal/internal/session"
	apperrors "github.com/spec-kit/campus-portal/pkg/util"
)

// PagesHandler serves the static pages.
type PagesHandler struct{}

// NewPagesHandler constructs handler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Home GET /.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	return page(c, fiber.StatusOK, "home", "Welcome", nil)
}

// Dashboard GET /dashboard.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	return page(c, fiber.StatusOK, "dashboard", "Home", nil)
}

// Faculty GET /faculty.
func (h *PagesHandler) Faculty(c *fiber.Ctx) error {
	return page(c, fiber.StatusOK, "faculty", "Faculty Tools", nil)
}

// Unauthorized GET /unauthorized.
func (h *PagesHandler) Unauthorized(c *fiber.Ctx) error {
	status, message := failure(apperrors.NewForbidden("You do not have permission to view this page."), "")
	return page(c, status, "unauthorized", "Unauthorized", fiber.Map{"Error": message})
}

// Loading is shown while the session cannot be resolved. The page refreshes itself
// and shows the cached role when that slot is still readable.
func (h *PagesHandler) Loading(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	data := fiber.Map{}
	if state, ok := session.FromContext(c); ok {
		if role, found, err := state.Store().CachedRole(c.UserContext()); err == nil && found {
			data["CachedRole"] = role
		}
	}
	return page(c, fiber.StatusOK, "loading", "Loading", data)
}

// NotFound is the catch-all route.
func (h *PagesHandler) NotFound(c *fiber.Ctx) error {
	observability.MarkUnmatched(c)
	status, message := failure(apperrors.NewNotFound("page"), "")
	return page(c, status, "not_found", "Not Found", fiber.Map{"Error": message})
}
