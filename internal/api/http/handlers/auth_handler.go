package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-portal/internal/api/dto"
	"github.com/spec-kit/campus-portal/internal/auth"
	"github.com/spec-kit/campus-portal/internal/domain"
	"github.com/spec-kit/campus-portal/internal/service"
	"github.com/spec-kit/campus-portal/internal/session"
	apperrors "github.com/spec-kit/campus-portal/pkg/util"
)

const (
	loginFailed        = "Login failed. Please check your credentials."
	registrationFailed = "Registration failed. User might already exist or invalid data."
	afterSignIn        = "/dashboard"
)

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	forms *service.AuthForms
}

// NewAuthHandler constructs handler.
func NewAuthHandler(forms *service.AuthForms) *AuthHandler {
	return &AuthHandler{forms: forms}
}

// LoginPage GET /login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return loginPage(c, fiber.StatusOK, "", "")
}

// Login POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return loginPage(c, fiber.StatusBadRequest, form.Email, "Please enter both email and password.")
	}

	req, err := h.forms.LoginRequest(form)
	if err != nil {
		status, message := failure(err, loginFailed)
		return loginPage(c, status, form.Email, message)
	}

	ok, err := state.Login(c.UserContext(), req)
	if err != nil {
		var refused *session.AuthFailure
		if errors.As(err, &refused) {
			status, _ := failure(refused.Err, "")
			return loginPage(c, status, req.Email, refused.Message)
		}
		return err
	}
	if !ok {
		status, message := failure(apperrors.NewUnauthorized(loginFailed), loginFailed)
		return loginPage(c, status, req.Email, message)
	}
	return c.Redirect(afterSignIn, fiber.StatusSeeOther)
}

// RegisterPage GET /register.
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return registerPage(c, fiber.StatusOK, dto.RegisterForm{Role: string(domain.RoleStudent)}, "")
}

// Register POST /register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	var form dto.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return registerPage(c, fiber.StatusBadRequest, form, "All fields are required.")
	}

	req, err := h.forms.RegisterRequest(form)
	if err != nil {
		status, message := failure(err, registrationFailed)
		return registerPage(c, status, form, message)
	}

	ok, err := state.Register(c.UserContext(), req)
	if err != nil {
		var refused *session.AuthFailure
		if errors.As(err, &refused) {
			status, _ := failure(refused.Err, "")
			return registerPage(c, status, form, refused.Message)
		}
		return err
	}
	if !ok {
		status, message := failure(apperrors.NewUnauthorized(registrationFailed), registrationFailed)
		return registerPage(c, status, form, message)
	}
	return c.Redirect(afterSignIn, fiber.StatusSeeOther)
}

// Logout POST /logout. Always ends on the login page, even for anonymous callers.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	state, err := stateOf(c)
	if err != nil {
		return err
	}
	if err := state.Logout(c.UserContext()); err != nil {
		return err
	}
	return c.Redirect(auth.LoginPath, fiber.StatusSeeOther)
}

func loginPage(c *fiber.Ctx, status int, email, message string) error {
	return page(c, status, "login", "Login", fiber.Map{"Email": email, "Error": message})
}

func registerPage(c *fiber.Ctx, status int, form dto.RegisterForm, message string) error {
	form.Password = ""
	return page(c, status, "register", "Register", fiber.Map{"Form": form, "Error": message})
}
