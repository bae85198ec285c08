package service

import (
	"context"
	"strings"

	"github.com/spec-kit/campus-portal/internal/api/dto"
	"github.com/spec-kit/campus-portal/internal/domain"
	"github.com/spec-kit/campus-portal/internal/repository"
	apperrors "github.com/spec-kit/campus-portal/pkg/util"
)

var roleMessages = Messages{
	"Role": "Invalid role. Please enter STUDENT, FACULTY, or ADMIN.",
}

// AdminService backs the user-management panel.
type AdminService struct {
	users     repository.UserRepository
	validator *FormValidator
}

// NewAdminService builds the service.
func NewAdminService(users repository.UserRepository, v *FormValidator) *AdminService {
	return &AdminService{users: users, validator: v}
}

// Users lists every account.
func (s *AdminService) Users(ctx context.Context, creds repository.TokenSource) ([]domain.User, error) {
	return s.users.List(ctx, creds)
}

// Delete removes the account id.
func (s *AdminService) Delete(ctx context.Context, creds repository.TokenSource, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.NewValidationError("User id is required.", nil)
	}
	return s.users.Delete(ctx, creds, id)
}

// ChangeRole validates the requested role and updates the account.
func (s *AdminService) ChangeRole(ctx context.Context, creds repository.TokenSource, id string, form dto.RoleForm) (domain.Role, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", apperrors.NewValidationError("User id is required.", nil)
	}
	if err := s.validator.Check(form, roleMessages); err != nil {
		return "", err
	}
	role, _ := domain.ParseRole(form.Role)
	if err := s.users.UpdateRole(ctx, creds, id, role); err != nil {
		return "", err
	}
	return role, nil
}
