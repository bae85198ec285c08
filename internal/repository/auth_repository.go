package repository

import (
	"context"
	"net/http"

	"github.com/spec-kit/campus-portal/internal/domain"
)

// AuthRepository calls the authentication service, which issues credentials.
type AuthRepository interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResult, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResult, error)
}

type authRepository struct {
	client *Client
}

// NewAuthRepository returns the HTTP implementation.
func NewAuthRepository(client *Client) AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResult, error) {
	var result domain.AuthResult
	err := r.client.Do(ctx, Request{Method: http.MethodPost, Path: "/login", Body: req}, &result)
	return result, err
}

func (r *authRepository) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResult, error) {
	var result domain.AuthResult
	err := r.client.Do(ctx, Request{Method: http.MethodPost, Path: "/register", Body: req}, &result)
	return result, err
}
