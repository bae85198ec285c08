package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spec-kit/campus-portal/internal/domain"
)

// NoticeRepository defines access to the notices service.
type NoticeRepository interface {
	List(ctx context.Context, creds TokenSource, filter domain.NoticeFilter) ([]domain.Notice, error)
	Create(ctx context.Context, creds TokenSource, notice domain.Notice) (*domain.Notice, error)
}

type noticeRepository struct {
	client *Client
}

// NewNoticeRepository returns the HTTP implementation.
func NewNoticeRepository(client *Client) NoticeRepository {
	return &noticeRepository{client: client}
}

func (r *noticeRepository) List(ctx context.Context, creds TokenSource, filter domain.NoticeFilter) ([]domain.Notice, error) {
	query := url.Values{}
	if filter.Department != "" {
		query.Set("department", filter.Department)
	}
	if filter.Year != "" {
		query.Set("year", filter.Year)
	}

	notices := []domain.Notice{}
	err := r.client.Do(ctx, Request{Method: http.MethodGet, Query: query, Token: creds}, &notices)
	return notices, err
}

func (r *noticeRepository) Create(ctx context.Context, creds TokenSource, notice domain.Notice) (*domain.Notice, error) {
	var created domain.Notice
	if err := r.client.Do(ctx, Request{Method: http.MethodPost, Body: notice, Token: creds}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
