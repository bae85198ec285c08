package service

import (
	"context"

	"github.com/spec-kit/campus-portal/internal/api/dto"
	"github.com/spec-kit/campus-portal/internal/domain"
	"github.com/spec-kit/campus-portal/internal/repository"
)

var resourceMessages = Messages{
	"Title":       "Resource title cannot be empty.",
	"FileURL":     "File URL cannot be empty.",
	"FileURL.url": "File URL must be a valid link.",
	"Subject":     "Please choose a subject.",
}

// ResourceService lists and uploads study resources.
type ResourceService struct {
	resources repository.ResourceRepository
	validator *FormValidator
}

// NewResourceService builds the service.
func NewResourceService(resources repository.ResourceRepository, v *FormValidator) *ResourceService {
	return &ResourceService{resources: resources, validator: v}
}

// Subject returns raw when it is a known subject, the default otherwise.
func (s *ResourceService) Subject(raw string) string {
	if domain.HasCode(domain.Subjects, raw) {
		return raw
	}
	return domain.DefaultSubject
}

// List returns the resources of subject.
func (s *ResourceService) List(ctx context.Context, creds repository.TokenSource, subject string) ([]domain.Resource, error) {
	return s.resources.ListBySubject(ctx, creds, s.Subject(subject))
}

// Upload validates form and posts the resource link.
func (s *ResourceService) Upload(ctx context.Context, creds repository.TokenSource, form dto.ResourceForm) (*domain.Resource, error) {
	trim(&form.Title, &form.FileURL)
	if err := s.validator.Check(form, resourceMessages); err != nil {
		return nil, err
	}
	return s.resources.Create(ctx, creds, domain.Resource{
		Title:   form.Title,
		FileURL: form.FileURL,
		Subject: form.Subject,
	})
}
