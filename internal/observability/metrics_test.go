package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/campus-portal/internal/config"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/events", "GET", 200, 4*time.Millisecond)
	m.RecordRequest("/events", "GET", 200, 2*time.Millisecond)
	m.RecordError("/admin", "GET", "UPSTREAM_FAILED")
	m.RecordGuardDecision("/admin", "DENIED_WRONG_ROLE")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/events|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/admin|GET|UPSTREAM_FAILED"])
	assert.Equal(t, int64(1), snap.GuardDecisions["/admin|DENIED_WRONG_ROLE"])
	assert.InDelta(t, 3.0, snap.AvgLatencyMS, 0.001)

	var nilMetrics *Metrics
	nilMetrics.RecordRequest("/", "GET", 200, time.Millisecond)
	nilMetrics.RecordGuardDecision("/", "GRANTED")
}

func TestRequestLogger(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), m))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.Snapshot().Requests["/ok|GET|204"])
}

func TestRequestLogger_KeysByRouteTemplate(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), m))
	app.Get("/users/:id", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Use(func(c *fiber.Ctx) error {
		MarkUnmatched(c)
		return c.SendStatus(http.StatusNotFound)
	})

	for _, target := range []string{"/users/1", "/users/2", "/users/3", "/nope", "/also/nope"} {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
	}

	snap := m.Snapshot()
	assert.Len(t, snap.Requests, 2)
	assert.Equal(t, int64(3), snap.Requests["/users/:id|GET|200"])
	assert.Equal(t, int64(2), snap.Requests[UnmatchedRoute+"|GET|404"])
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "not-a-level"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}
