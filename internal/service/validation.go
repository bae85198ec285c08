package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/campus-portal/internal/domain"
	apperrors "github.com/spec-kit/campus-portal/pkg/util"
)

// FormValidator checks form input before it is sent to a backend service.
// The backends still enforce their own rules; this only spares a round trip.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator registers the catalog validations.
func NewFormValidator() *FormValidator {
	v := validator.New()
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseRole(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("department", catalogRule(domain.Departments))
	_ = v.RegisterValidation("year", catalogRule(domain.Years))
	_ = v.RegisterValidation("subject", catalogRule(domain.Subjects))
	return &FormValidator{validate: v}
}

func catalogRule(options []domain.Option) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return domain.HasCode(options, fl.Field().String())
	}
}

// Messages maps "Field" or "Field.tag" to the text shown on the form.
type Messages map[string]string

// Check validates form and returns a validation DomainError carrying the first message.
func (v *FormValidator) Check(form any, messages Messages) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewInternalError(err)
	}

	details := make(map[string]any, len(fieldErrs))
	first := ""
	for _, fe := range fieldErrs {
		msg := messageFor(fe, messages)
		details[fe.Field()] = msg
		if first == "" {
			first = msg
		}
	}
	return apperrors.NewValidationError(first, details)
}

func messageFor(fe validator.FieldError, messages Messages) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid.", fe.Field())
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
