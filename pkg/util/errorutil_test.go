package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	wrapped := fmt.Errorf("list events: %w", NewUpstreamError(http.StatusNotFound, "no such list", nil))
	de := ToDomainError(wrapped)
	assert.Equal(t, "UPSTREAM_FAILED", de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)

	plain := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", plain.Code)
	assert.Equal(t, http.StatusInternalServerError, plain.HTTPStatus)
}

func TestUpstreamErrorDefaultsToBadGateway(t *testing.T) {
	de := ToDomainError(NewUpstreamError(0, "No response from server.", errors.New("dial tcp")))
	assert.Equal(t, http.StatusBadGateway, de.HTTPStatus)
	assert.Equal(t, "No response from server.", Message(de))
	assert.Contains(t, de.Error(), "dial tcp")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "forbidden", Message(NewForbidden("forbidden")))
	assert.Equal(t, "raw", Message(errors.New("raw")))
}

func TestClientErrorStatuses(t *testing.T) {
	tests := []struct {
		err    error
		code   string
		status int
	}{
		{err: NewNotFound("page"), code: "NOT_FOUND", status: http.StatusNotFound},
		{err: NewUnauthorized("Login failed."), code: "UNAUTHORIZED", status: http.StatusUnauthorized},
		{err: NewForbidden("no access"), code: "FORBIDDEN", status: http.StatusForbidden},
		{err: NewValidationError("bad form", nil), code: "VALIDATION_FAILED", status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			de := ToDomainError(tt.err)
			assert.Equal(t, tt.code, de.Code)
			assert.Equal(t, tt.status, de.HTTPStatus)
		})
	}
	assert.Equal(t, "page not found", Message(NewNotFound("page")))
}
