package auth

import (
	"github.com/spec-kit/campus-portal/internal/domain"
)

// GuardState is the outcome of evaluating a protected route.
type GuardState string

const (
	StatePending               GuardState = "PENDING"
	StateDeniedUnauthenticated GuardState = "DENIED_UNAUTHENTICATED"
	StateDeniedWrongRole       GuardState = "DENIED_WRONG_ROLE"
	StateGranted               GuardState = "GRANTED"
)

// Surfaces the guard redirects to.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// Snapshot is the guard's input: whether the session has been resolved yet and its value.
type Snapshot struct {
	Resolved bool
	Session  domain.Session
}

// Rule is attached to a route. No roles means any authenticated session.
type Rule struct {
	AllowedRoles []domain.Role
}

// AnyAuthenticated admits every signed-in session.
func AnyAuthenticated() Rule {
	return Rule{}
}

// RolesOnly admits sessions holding one of roles.
func RolesOnly(roles ...domain.Role) Rule {
	return Rule{AllowedRoles: roles}
}

// Permits reports whether session satisfies the role restriction.
func (r Rule) Permits(session domain.Session) bool {
	if len(r.AllowedRoles) == 0 {
		return session.IsAuthenticated
	}
	return session.HasRole(r.AllowedRoles...)
}

// Decision tells the caller what to render.
type Decision struct {
	State    GuardState
	Redirect string
}

// Evaluate runs the guard for one navigation.
func Evaluate(snap Snapshot, rule Rule) Decision {
	switch {
	case !snap.Resolved:
		return Decision{State: StatePending}
	case !snap.Session.IsAuthenticated:
		return Decision{State: StateDeniedUnauthenticated, Redirect: LoginPath}
	case !rule.Permits(snap.Session):
		return Decision{State: StateDeniedWrongRole, Redirect: UnauthorizedPath}
	default:
		return Decision{State: StateGranted}
	}
}
