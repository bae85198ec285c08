package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-portal/internal/api/dto"
	"github.com/spec-kit/campus-portal/internal/domain"
	"github.com/spec-kit/campus-portal/internal/service"
	apperrors "github.com/spec-kit/campus-portal/pkg/util"
)

// NoticesHandler serves the filtered notice list and the posting form.
type NoticesHandler struct {
	service *service.NoticeService
}

// NewNoticesHandler constructs handler.
func NewNoticesHandler(noticeService *service.NoticeService) *NoticesHandler {
	return &NoticesHandler{service: noticeService}
}

// List GET /notices?department=&year=.
func (h *NoticesHandler) List(c *fiber.Ctx) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	data := fiber.Map{
		"Filter":      domain.NoticeFilter{},
		"Departments": domain.Departments,
		"Years":       domain.Years,
	}
	var query dto.NoticeFilterForm
	if err := c.QueryParser(&query); err != nil {
		status, message := failure(apperrors.NewValidationError("Invalid notice filter.", nil), "")
		data["Error"] = message
		return page(c, status, "notices", "Notices", data)
	}
	filter := h.service.Filter(query)
	data["Filter"] = filter

	notices, err := h.service.List(c.UserContext(), state.Store(), filter)
	if err != nil {
		status, _ := failure(err, "")
		data["Error"] = "Failed to fetch notices. Please try again."
		return page(c, status, "notices", "Notices", data)
	}
	data["Notices"] = notices
	return page(c, fiber.StatusOK, "notices", "Notices", data)
}

// CreatePage GET /notices/create.
func (h *NoticesHandler) CreatePage(c *fiber.Ctx) error {
	return noticeForm(c, fiber.StatusOK, defaultNoticeForm(), nil)
}

// Create POST /notices/create.
func (h *NoticesHandler) Create(c *fiber.Ctx) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	form := defaultNoticeForm()
	if err := c.BodyParser(&form); err != nil {
		return noticeForm(c, fiber.StatusBadRequest, form, fiber.Map{"Error": "Failed to post notice. Please check your input."})
	}

	if _, err := h.service.Create(c.UserContext(), state.Store(), form); err != nil {
		status, message := failure(err, "Failed to post notice. Please check your input.")
		return noticeForm(c, status, form, fiber.Map{"Error": message})
	}
	return noticeForm(c, fiber.StatusOK, defaultNoticeForm(), fiber.Map{"Success": "Notice posted successfully!"})
}

func defaultNoticeForm() dto.NoticeForm {
	return dto.NoticeForm{Department: domain.Departments[0].Code, Year: domain.Years[0].Code}
}

func noticeForm(c *fiber.Ctx, status int, form dto.NoticeForm, extra fiber.Map) error {
	data := fiber.Map{
		"Form":        form,
		"Departments": domain.Departments,
		"Years":       domain.Years,
	}
	for k, v := range extra {
		data[k] = v
	}
	return page(c, status, "notice_create", "Post Notice", data)
}
