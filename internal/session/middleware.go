package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/campus-portal/internal/auth"
)

const stateKey = "session_state"

// CookieConfig controls the browser identification cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Middleware identifies the browser, resolves its session and stores the state in Locals.
func (s *Service) Middleware(cookie CookieConfig) fiber.Handler {
	if cookie.Name == "" {
		cookie.Name = "cc_client"
	}
	return func(c *fiber.Ctx) error {
		clientID := c.Cookies(cookie.Name)
		if _, err := uuid.Parse(clientID); err != nil {
			clientID = uuid.NewString()
		}

		browserCookie := &fiber.Cookie{
			Name:     cookie.Name,
			Value:    clientID,
			Path:     "/",
			HTTPOnly: true,
			Secure:   cookie.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		}
		if cookie.TTL > 0 {
			browserCookie.Expires = time.Now().Add(cookie.TTL)
		}
		c.Cookie(browserCookie)

		state := s.ForClient(clientID)
		if _, err := state.Resolve(c.UserContext()); err != nil {
			s.logger.Warn("session left unresolved", zap.String("client_id", clientID), zap.Error(err))
		}
		c.Locals(stateKey, state)
		return c.Next()
	}
}

// FromContext retrieves the state resolved for this request.
func FromContext(c *fiber.Ctx) (*State, bool) {
	val := c.Locals(stateKey)
	if val == nil {
		return nil, false
	}
	state, ok := val.(*State)
	return state, ok
}

// SnapshotOf adapts FromContext for the route guard. A missing state reads as unresolved.
func SnapshotOf(c *fiber.Ctx) auth.Snapshot {
	state, ok := FromContext(c)
	if !ok {
		return auth.Snapshot{}
	}
	return state.Snapshot()
}
