package auth

import (
	"github.com/gofiber/fiber/v2"
)

// SnapshotFunc yields the session snapshot resolved for the current request.
type SnapshotFunc func(c *fiber.Ctx) Snapshot

// DecisionRecorder counts guard outcomes per route template.
type DecisionRecorder interface {
	RecordGuardDecision(path, state string)
}

// Guard turns route rules into Fiber handlers.
type Guard struct {
	snapshot SnapshotFunc
	pending  fiber.Handler
	recorder DecisionRecorder
}

// NewGuard constructs a guard. pending renders the transient loading surface.
func NewGuard(snapshot SnapshotFunc, pending fiber.Handler, recorder DecisionRecorder) *Guard {
	return &Guard{snapshot: snapshot, pending: pending, recorder: recorder}
}

// Require protects the routes that follow it with rule.
func (g *Guard) Require(rule Rule) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := Evaluate(g.snapshot(c), rule)
		if g.recorder != nil {
			g.recorder.RecordGuardDecision(c.Route().Path, string(decision.State))
		}

		switch decision.State {
		case StateGranted:
			return c.Next()
		case StatePending:
			if g.pending == nil {
				return c.Status(fiber.StatusOK).SendString("Loading authentication...")
			}
			return g.pending(c)
		default:
			return c.Redirect(decision.Redirect, fiber.StatusSeeOther)
		}
	}
}

// RequireAuthenticated admits any signed-in session.
func (g *Guard) RequireAuthenticated() fiber.Handler {
	return g.Require(AnyAuthenticated())
}
