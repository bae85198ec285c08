package service

import (
	"context"

	"github.com/spec-kit/campus-portal/internal/api/dto"
	"github.com/spec-kit/campus-portal/internal/domain"
	"github.com/spec-kit/campus-portal/internal/repository"
)

var noticeMessages = Messages{
	"Title":      "Notice title cannot be empty.",
	"Content":    "Notice content cannot be empty.",
	"Department": "Please choose a department.",
	"Year":       "Please choose a year.",
}

// NoticeService lists and posts notices.
type NoticeService struct {
	notices   repository.NoticeRepository
	validator *FormValidator
}

// NewNoticeService builds the service.
func NewNoticeService(notices repository.NoticeRepository, v *FormValidator) *NoticeService {
	return &NoticeService{notices: notices, validator: v}
}

// Filter converts the list query into a filter. "---" and unknown codes mean no filter.
func (s *NoticeService) Filter(form dto.NoticeFilterForm) domain.NoticeFilter {
	filter := domain.NoticeFilter{}
	if domain.HasCode(domain.Departments, form.Department) {
		filter.Department = form.Department
	}
	if domain.HasCode(domain.Years, form.Year) {
		filter.Year = form.Year
	}
	return filter
}

// List returns notices matching filter.
func (s *NoticeService) List(ctx context.Context, creds repository.TokenSource, filter domain.NoticeFilter) ([]domain.Notice, error) {
	return s.notices.List(ctx, creds, filter)
}

// Create validates form and posts the notice.
func (s *NoticeService) Create(ctx context.Context, creds repository.TokenSource, form dto.NoticeForm) (*domain.Notice, error) {
	trim(&form.Title, &form.Content)
	if err := s.validator.Check(form, noticeMessages); err != nil {
		return nil, err
	}
	return s.notices.Create(ctx, creds, domain.Notice{
		Title:      form.Title,
		Content:    form.Content,
		Department: form.Department,
		Year:       form.Year,
	})
}
