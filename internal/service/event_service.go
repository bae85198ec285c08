package service

import (
	"context"

	"github.com/spec-kit/campus-portal/internal/api/dto"
	"github.com/spec-kit/campus-portal/internal/domain"
	"github.com/spec-kit/campus-portal/internal/repository"
)

var eventMessages = Messages{
	"Title":         "All fields are required.",
	"Description":   "All fields are required.",
	"Date":          "All fields are required.",
	"Date.datetime": "Date must use the YYYY-MM-DD format.",
}

// EventService lists and creates campus events.
type EventService struct {
	events    repository.EventRepository
	validator *FormValidator
}

// NewEventService builds the service.
func NewEventService(events repository.EventRepository, v *FormValidator) *EventService {
	return &EventService{events: events, validator: v}
}

// List returns every event visible to the caller.
func (s *EventService) List(ctx context.Context, creds repository.TokenSource) ([]domain.Event, error) {
	return s.events.List(ctx, creds)
}

// Create validates form and posts the event.
func (s *EventService) Create(ctx context.Context, creds repository.TokenSource, form dto.EventForm) error {
	trim(&form.Title, &form.Description, &form.Date)
	if err := s.validator.Check(form, eventMessages); err != nil {
		return err
	}
	return s.events.Create(ctx, creds, domain.Event{
		Title:       form.Title,
		Description: form.Description,
		Date:        form.Date,
	})
}
