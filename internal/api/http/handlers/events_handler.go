package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-portal/internal/api/dto"
	"github.com/spec-kit/campus-portal/internal/service"
)

// EventsHandler serves the event list and the creation form.
type EventsHandler struct {
	service *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(eventService *service.EventService) *EventsHandler {
	return &EventsHandler{service: eventService}
}

// List GET /events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	events, err := h.service.List(c.UserContext(), state.Store())
	if err != nil {
		status, message := failure(err, "Failed to fetch events.")
		return page(c, status, "events", "Events", fiber.Map{"Error": message})
	}
	return page(c, fiber.StatusOK, "events", "Events", fiber.Map{"Events": events})
}

// CreatePage GET /events/create.
func (h *EventsHandler) CreatePage(c *fiber.Ctx) error {
	return page(c, fiber.StatusOK, "event_create", "Create Event", fiber.Map{"Form": dto.EventForm{}})
}

// Create POST /events/create. On success the form is cleared and the browser
// is sent back to the list shortly after.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	var form dto.EventForm
	if err := c.BodyParser(&form); err != nil {
		return page(c, fiber.StatusBadRequest, "event_create", "Create Event", fiber.Map{"Form": form, "Error": "All fields are required."})
	}

	if err := h.service.Create(c.UserContext(), state.Store(), form); err != nil {
		status, message := failure(err, "Failed to create event. Please try again.")
		return page(c, status, "event_create", "Create Event", fiber.Map{"Form": form, "Error": message})
	}

	c.Set("Refresh", "2; url=/events")
	return page(c, fiber.StatusOK, "event_create", "Create Event", fiber.Map{
		"Form":    dto.EventForm{},
		"Success": "Event created successfully!",
	})
}
