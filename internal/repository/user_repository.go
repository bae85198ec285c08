package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spec-kit/campus-portal/internal/domain"
)

// UserRepository defines access to the admin user-management service.
type UserRepository interface {
	List(ctx context.Context, creds TokenSource) ([]domain.User, error)
	Delete(ctx context.Context, creds TokenSource, id string) error
	UpdateRole(ctx context.Context, creds TokenSource, id string, role domain.Role) error
}

type userRepository struct {
	client *Client
}

// NewUserRepository returns the HTTP implementation.
func NewUserRepository(client *Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) List(ctx context.Context, creds TokenSource) ([]domain.User, error) {
	users := []domain.User{}
	err := r.client.Do(ctx, Request{Method: http.MethodGet, Path: "/users", Token: creds}, &users)
	return users, err
}

func (r *userRepository) Delete(ctx context.Context, creds TokenSource, id string) error {
	return r.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/users/" + url.PathEscape(id), Token: creds}, nil)
}

func (r *userRepository) UpdateRole(ctx context.Context, creds TokenSource, id string, role domain.Role) error {
	body := map[string]domain.Role{"role": role}
	path := "/users/" + url.PathEscape(id) + "/role"
	return r.client.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body, Token: creds}, nil)
}
