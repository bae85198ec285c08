package http

import (
	"bytes"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campus-portal/internal/domain"
)

func TestViews_LoadAndRender(t *testing.T) {
	views := NewViews()
	require.NoError(t, views.Load())

	for _, name := range []string{"home", "login", "unauthorized", "not_found", "loading", "error"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := views.Render(&buf, name, fiber.Map{
				"Title":   "Page",
				"Path":    "/",
				"Session": domain.Anonymous(),
				"Email":   "",
				"Error":   "",
			})
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "CampusConnect")
			assert.Contains(t, buf.String(), `href="/login"`)
		})
	}
}

func TestViews_UnknownPage(t *testing.T) {
	err := NewViews().Render(&bytes.Buffer{}, "missing", nil)
	assert.Error(t, err)
}
