package repository

import (
	"context"
	"net/http"

	"github.com/spec-kit/campus-portal/internal/domain"
)

// EventRepository defines access to the events service.
type EventRepository interface {
	List(ctx context.Context, creds TokenSource) ([]domain.Event, error)
	Create(ctx context.Context, creds TokenSource, event domain.Event) error
}

type eventRepository struct {
	client *Client
}

// NewEventRepository returns the HTTP implementation.
func NewEventRepository(client *Client) EventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) List(ctx context.Context, creds TokenSource) ([]domain.Event, error) {
	events := []domain.Event{}
	err := r.client.Do(ctx, Request{Method: http.MethodGet, Token: creds}, &events)
	return events, err
}

func (r *eventRepository) Create(ctx context.Context, creds TokenSource, event domain.Event) error {
	var ack string
	return r.client.Do(ctx, Request{Method: http.MethodPost, Body: event, Token: creds}, &ack)
}
