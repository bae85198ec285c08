package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-portal/internal/domain"
	"github.com/spec-kit/campus-portal/internal/session"
	apperrors "github.com/spec-kit/campus-portal/pkg/util"
)

var errNoSession = errors.New("session middleware not installed")

// page renders view inside the layout with the navbar data filled in.
func page(c *fiber.Ctx, status int, view, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["Path"] = c.Path()
	data["Session"] = currentSession(c)
	return c.Status(status).Render(view, data)
}

func currentSession(c *fiber.Ctx) domain.Session {
	state, ok := session.FromContext(c)
	if !ok {
		return domain.Anonymous()
	}
	return state.Session()
}

func stateOf(c *fiber.Ctx) (*session.State, error) {
	state, ok := session.FromContext(c)
	if !ok {
		return nil, apperrors.NewInternalError(errNoSession)
	}
	return state, nil
}

// failure picks the message and status shown for err, falling back to fallback
// when the error carries no text of its own.
func failure(err error, fallback string) (int, string) {
	domainErr := apperrors.ToDomainError(err)
	message := domainErr.Message
	if domainErr.Code == "INTERNAL_ERROR" || message == "" {
		message = fallback
	}
	return domainErr.HTTPStatus, message
}
