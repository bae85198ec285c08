package service

import (
	"github.com/spec-kit/campus-portal/internal/api/dto"
	"github.com/spec-kit/campus-portal/internal/domain"
)

var (
	loginMessages = Messages{
		"Email":       "Please enter both email and password.",
		"Password":    "Please enter both email and password.",
		"Email.email": "Please enter a valid email address.",
	}
	registerMessages = Messages{
		"Name":         "All fields are required.",
		"Email":        "All fields are required.",
		"Password":     "All fields are required.",
		"Role":         "All fields are required.",
		"Email.email":  "Please enter a valid email address.",
		"Password.min": "Password must be at least 6 characters long.",
		"Role.role":    "Invalid role. Please choose STUDENT, FACULTY, or ADMIN.",
	}
)

// AuthForms turns login and registration forms into requests for the auth service.
type AuthForms struct {
	validator *FormValidator
}

// NewAuthForms builds the form checker.
func NewAuthForms(v *FormValidator) *AuthForms {
	return &AuthForms{validator: v}
}

// LoginRequest validates form.
func (a *AuthForms) LoginRequest(form dto.LoginForm) (domain.LoginRequest, error) {
	trim(&form.Email)
	if err := a.validator.Check(form, loginMessages); err != nil {
		return domain.LoginRequest{}, err
	}
	return domain.LoginRequest{Email: form.Email, Password: form.Password}, nil
}

// RegisterRequest validates form and normalises the role.
func (a *AuthForms) RegisterRequest(form dto.RegisterForm) (domain.RegisterRequest, error) {
	trim(&form.Name, &form.Email, &form.Role)
	if err := a.validator.Check(form, registerMessages); err != nil {
		return domain.RegisterRequest{}, err
	}
	role, _ := domain.ParseRole(form.Role)
	return domain.RegisterRequest{Name: form.Name, Email: form.Email, Password: form.Password, Role: role}, nil
}
