package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spec-kit/campus-portal/internal/domain"
)

// ResourceRepository defines access to the resources service.
type ResourceRepository interface {
	ListBySubject(ctx context.Context, creds TokenSource, subject string) ([]domain.Resource, error)
	Create(ctx context.Context, creds TokenSource, resource domain.Resource) (*domain.Resource, error)
}

type resourceRepository struct {
	client *Client
}

// NewResourceRepository returns the HTTP implementation.
func NewResourceRepository(client *Client) ResourceRepository {
	return &resourceRepository{client: client}
}

func (r *resourceRepository) ListBySubject(ctx context.Context, creds TokenSource, subject string) ([]domain.Resource, error) {
	query := url.Values{}
	if subject != "" {
		query.Set("subject", subject)
	}

	resources := []domain.Resource{}
	err := r.client.Do(ctx, Request{Method: http.MethodGet, Query: query, Token: creds}, &resources)
	return resources, err
}

func (r *resourceRepository) Create(ctx context.Context, creds TokenSource, resource domain.Resource) (*domain.Resource, error) {
	var created domain.Resource
	if err := r.client.Do(ctx, Request{Method: http.MethodPost, Body: resource, Token: creds}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
