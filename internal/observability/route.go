package observability

import "github.com/gofiber/fiber/v2"

// UnmatchedRoute is the metrics key of requests served by the catch-all handler.
const UnmatchedRoute = "unmatched"

const unmatchedKey = "metrics_unmatched"

// MarkUnmatched flags the request as served by the catch-all handler.
func MarkUnmatched(c *fiber.Ctx) {
	c.Locals(unmatchedKey, true)
}

// RouteKey returns the registered route template of the request, e.g.
// "/admin/users/:id/delete", so metric keys stay bounded by the route table.
func RouteKey(c *fiber.Ctx) string {
	if unmatched, _ := c.Locals(unmatchedKey).(bool); unmatched {
		return UnmatchedRoute
	}
	route := c.Route()
	if route == nil || route.Path == "" {
		return UnmatchedRoute
	}
	return route.Path
}
