package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-portal/internal/api/dto"
	"github.com/spec-kit/campus-portal/internal/service"
	apperrors "github.com/spec-kit/campus-portal/pkg/util"
)

var adminOutcomes = map[string]string{
	"deleted": "User deleted successfully!",
	"role":    "User role updated successfully!",
}

// AdminHandler serves the user management panel.
type AdminHandler struct {
	service *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{service: adminService}
}

// Panel GET /admin.
func (h *AdminHandler) Panel(c *fiber.Ctx) error {
	return h.panel(c, fiber.StatusOK, fiber.Map{"Success": adminOutcomes[c.Query("done")]})
}

// Delete POST /admin/users/:id/delete.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), state.Store(), c.Params("id")); err != nil {
		status, message := failure(err, "Failed to delete user.")
		return h.panel(c, status, fiber.Map{"Error": message})
	}
	return c.Redirect("/admin?done=deleted", fiber.StatusSeeOther)
}

// ChangeRole POST /admin/users/:id/role.
func (h *AdminHandler) ChangeRole(c *fiber.Ctx) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	var form dto.RoleForm
	if err := c.BodyParser(&form); err != nil {
		status, message := failure(apperrors.NewValidationError("Failed to update user role.", nil), "")
		return h.panel(c, status, fiber.Map{"Error": message})
	}
	if _, err := h.service.ChangeRole(c.UserContext(), state.Store(), c.Params("id"), form); err != nil {
		status, message := failure(err, "Failed to update user role.")
		return h.panel(c, status, fiber.Map{"Error": message})
	}
	return c.Redirect("/admin?done=role", fiber.StatusSeeOther)
}

func (h *AdminHandler) panel(c *fiber.Ctx, status int, data fiber.Map) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	users, err := h.service.Users(c.UserContext(), state.Store())
	if err != nil {
		listStatus, message := failure(err, "Failed to fetch users. Ensure you are logged in as an ADMIN.")
		if _, set := data["Error"]; !set {
			data["Error"] = message
			status = listStatus
		}
	}
	data["Users"] = users
	return page(c, status, "admin", "Admin Panel", data)
}
