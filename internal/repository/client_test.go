package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campus-portal/internal/domain"
	apperrors "github.com/spec-kit/campus-portal/pkg/util"
)

type staticToken string

func (s staticToken) Read(context.Context) (string, bool, error) {
	return string(s), s != "", nil
}

type brokenToken struct{}

func (brokenToken) Read(context.Context) (string, bool, error) {
	return "", false, errors.New("storage offline")
}

type captured struct {
	method string
	path   string
	query  string
	auth   string
	body   map[string]any
}

func newServer(t *testing.T, status int, response string) (*httptest.Server, *captured) {
	t.Helper()
	seen := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.method = r.Method
		seen.path = r.URL.Path
		seen.query = r.URL.RawQuery
		seen.auth = r.Header.Get("Authorization")
		if r.ContentLength > 0 {
			_ = json.NewDecoder(r.Body).Decode(&seen.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func TestAuthRepository_Login(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, `{"token":"abc.def.ghi"}`)
	repo := NewAuthRepository(NewClient(srv.URL+"/api/auth", time.Second, nil))

	result, err := repo.Login(context.Background(), domain.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", result.Token)
	assert.Equal(t, http.MethodPost, seen.method)
	assert.Equal(t, "/api/auth/login", seen.path)
	assert.Empty(t, seen.auth)
	assert.Equal(t, "a@x.com", seen.body["email"])
}

func TestAuthRepository_RegisterServerMessage(t *testing.T) {
	srv, seen := newServer(t, http.StatusConflict, `{"message":"Email already in use"}`)
	repo := NewAuthRepository(NewClient(srv.URL, time.Second, nil))

	_, err := repo.Register(context.Background(), domain.RegisterRequest{Name: "A", Email: "a@x.com", Password: "pw", Role: domain.RoleStudent})
	require.Error(t, err)
	assert.Equal(t, "Email already in use", apperrors.Message(err))
	assert.Equal(t, http.StatusConflict, apperrors.ToDomainError(err).HTTPStatus)
	assert.Equal(t, "STUDENT", seen.body["role"])
}

func TestClient_StatusWithoutMessage(t *testing.T) {
	srv, _ := newServer(t, http.StatusInternalServerError, `oops`)
	repo := NewEventRepository(NewClient(srv.URL, time.Second, nil))

	_, err := repo.List(context.Background(), staticToken("tok"))
	assert.Equal(t, "Server responded with status 500", apperrors.Message(err))
}

func TestClient_NoResponse(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	repo := NewEventRepository(NewClient(addr, time.Second, nil))
	_, err := repo.List(context.Background(), staticToken("tok"))
	assert.Equal(t, msgNoResponse, apperrors.Message(err))
}

func TestClient_SetupErrors(t *testing.T) {
	repo := NewEventRepository(NewClient("not a url", time.Second, nil))
	_, err := repo.List(context.Background(), staticToken("tok"))
	assert.Contains(t, apperrors.Message(err), "Error setting up the request")

	srv, _ := newServer(t, http.StatusOK, `[]`)
	repo = NewEventRepository(NewClient(srv.URL, time.Second, nil))
	_, err = repo.List(context.Background(), brokenToken{})
	assert.Contains(t, apperrors.Message(err), "storage offline")
}

func TestClient_CancelledContext(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, `[]`)
	repo := NewEventRepository(NewClient(srv.URL, time.Second, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.List(ctx, staticToken("tok"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, seen.method)
}

func TestEventRepository(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, `[{"id":"1","title":"Hackathon","description":"48h","date":"2026-11-01"}]`)
	repo := NewEventRepository(NewClient(srv.URL+"/api/events", time.Second, nil))

	events, err := repo.List(context.Background(), staticToken("tok"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Hackathon", events[0].Title)
	assert.Equal(t, "Bearer tok", seen.auth)
	assert.Equal(t, "/api/events", seen.path)

	srv, seen = newServer(t, http.StatusCreated, `Event created successfully`)
	repo = NewEventRepository(NewClient(srv.URL, time.Second, nil))
	err = repo.Create(context.Background(), staticToken("tok"), domain.Event{Title: "T", Description: "D", Date: "2026-11-02"})
	require.NoError(t, err)
	assert.Equal(t, "2026-11-02", seen.body["date"])
}

func TestNoticeRepository_List(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, `[{"title":"Exam","content":"Hall B","department":"IT","year":"FE"}]`)
	repo := NewNoticeRepository(NewClient(srv.URL, time.Second, nil))

	notices, err := repo.List(context.Background(), staticToken("tok"), domain.NoticeFilter{Department: "IT"})
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, "department=IT", seen.query)

	_, err = repo.List(context.Background(), staticToken("tok"), domain.NoticeFilter{})
	require.NoError(t, err)
	assert.Empty(t, seen.query)
}

func TestResourceRepository(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, `{"id":"r1","title":"Optics","fileUrl":"https://x/optics.pdf","subject":"Computer Science"}`)
	repo := NewResourceRepository(NewClient(srv.URL, time.Second, nil))

	created, err := repo.Create(context.Background(), staticToken("tok"), domain.Resource{Title: "Optics", FileURL: "https://x/optics.pdf", Subject: "Physics"})
	require.NoError(t, err)
	assert.Equal(t, "r1", created.ID)
	assert.Equal(t, "https://x/optics.pdf", seen.body["fileUrl"])

	_, err = repo.ListBySubject(context.Background(), staticToken("tok"), "Computer Science")
	require.NoError(t, err)
	assert.Equal(t, "subject=Computer+Science", seen.query)
}

func TestUserRepository(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, ``)
	repo := NewUserRepository(NewClient(srv.URL+"/api/admin", time.Second, nil))

	require.NoError(t, repo.UpdateRole(context.Background(), staticToken("adm"), "12", domain.RoleFaculty))
	assert.Equal(t, http.MethodPut, seen.method)
	assert.Equal(t, "/api/admin/users/12/role", seen.path)
	assert.Equal(t, "FACULTY", seen.body["role"])
	assert.Equal(t, "Bearer adm", seen.auth)

	require.NoError(t, repo.Delete(context.Background(), staticToken("adm"), "12"))
	assert.Equal(t, http.MethodDelete, seen.method)
	assert.Equal(t, "/api/admin/users/12", seen.path)
}
