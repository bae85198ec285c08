package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-portal/internal/api/dto"
	"github.com/spec-kit/campus-portal/internal/domain"
	"github.com/spec-kit/campus-portal/internal/service"
)

// ResourcesHandler serves study resources by subject and the upload form.
type ResourcesHandler struct {
	service *service.ResourceService
}

// NewResourcesHandler constructs handler.
func NewResourcesHandler(resourceService *service.ResourceService) *ResourcesHandler {
	return &ResourcesHandler{service: resourceService}
}

// List GET /resources?subject=.
func (h *ResourcesHandler) List(c *fiber.Ctx) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	subject := h.service.Subject(c.Query("subject"))
	data := fiber.Map{"Subject": subject, "Subjects": domain.Subjects}

	resources, err := h.service.List(c.UserContext(), state.Store(), subject)
	if err != nil {
		status, _ := failure(err, "")
		data["Error"] = "Failed to fetch resources. Please try again."
		return page(c, status, "resources", "Resources", data)
	}
	data["Resources"] = resources
	return page(c, fiber.StatusOK, "resources", "Resources", data)
}

// UploadPage GET /resources/upload.
func (h *ResourcesHandler) UploadPage(c *fiber.Ctx) error {
	return uploadForm(c, fiber.StatusOK, dto.ResourceForm{Subject: domain.DefaultSubject}, nil)
}

// Upload POST /resources/upload.
func (h *ResourcesHandler) Upload(c *fiber.Ctx) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	form := dto.ResourceForm{Subject: domain.DefaultSubject}
	if err := c.BodyParser(&form); err != nil {
		return uploadForm(c, fiber.StatusBadRequest, form, fiber.Map{"Error": "Failed to upload resource. Please check your input."})
	}

	if _, err := h.service.Upload(c.UserContext(), state.Store(), form); err != nil {
		status, message := failure(err, "Failed to upload resource. Please check your input.")
		return uploadForm(c, status, form, fiber.Map{"Error": message})
	}
	return uploadForm(c, fiber.StatusOK, dto.ResourceForm{Subject: domain.DefaultSubject}, fiber.Map{"Success": "Resource uploaded successfully!"})
}

func uploadForm(c *fiber.Ctx, status int, form dto.ResourceForm, extra fiber.Map) error {
	data := fiber.Map{"Form": form, "Subjects": domain.Subjects}
	for k, v := range extra {
		data[k] = v
	}
	return page(c, status, "resource_upload", "Upload Resource", data)
}
