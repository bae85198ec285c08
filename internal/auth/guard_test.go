package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campus-portal/internal/domain"
)

func sessionFor(role domain.Role) domain.Session {
	return domain.Authenticated(domain.Claims{Email: "u@x.com", Role: role, SubjectID: "1"})
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		rule Rule
		want Decision
	}{
		{
			name: "pending never redirects",
			snap: Snapshot{Resolved: false},
			rule: RolesOnly(domain.RoleAdmin),
			want: Decision{State: StatePending},
		},
		{
			name: "pending even with a session value",
			snap: Snapshot{Resolved: false, Session: sessionFor(domain.RoleAdmin)},
			rule: AnyAuthenticated(),
			want: Decision{State: StatePending},
		},
		{
			name: "anonymous goes to login",
			snap: Snapshot{Resolved: true, Session: domain.Anonymous()},
			rule: AnyAuthenticated(),
			want: Decision{State: StateDeniedUnauthenticated, Redirect: LoginPath},
		},
		{
			name: "student on admin route",
			snap: Snapshot{Resolved: true, Session: sessionFor(domain.RoleStudent)},
			rule: RolesOnly(domain.RoleAdmin),
			want: Decision{State: StateDeniedWrongRole, Redirect: UnauthorizedPath},
		},
		{
			name: "admin on admin route",
			snap: Snapshot{Resolved: true, Session: sessionFor(domain.RoleAdmin)},
			rule: RolesOnly(domain.RoleAdmin),
			want: Decision{State: StateGranted},
		},
		{
			name: "faculty on unrestricted route",
			snap: Snapshot{Resolved: true, Session: sessionFor(domain.RoleFaculty)},
			rule: AnyAuthenticated(),
			want: Decision{State: StateGranted},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.snap, tt.rule))
		})
	}
}

func TestEvaluate_UnrestrictedGrantsEveryRole(t *testing.T) {
	for _, role := range domain.Roles {
		decision := Evaluate(Snapshot{Resolved: true, Session: sessionFor(role)}, AnyAuthenticated())
		assert.Equal(t, StateGranted, decision.State, role)
	}
}

type recordedDecision struct{ path, state string }

type fakeRecorder struct{ decisions []recordedDecision }

func (r *fakeRecorder) RecordGuardDecision(path, state string) {
	r.decisions = append(r.decisions, recordedDecision{path, state})
}

func TestGuardRequire(t *testing.T) {
	var snap Snapshot
	recorder := &fakeRecorder{}
	guard := NewGuard(func(*fiber.Ctx) Snapshot { return snap }, nil, recorder)

	app := fiber.New()
	app.Get("/admin", guard.Require(RolesOnly(domain.RoleAdmin)), func(c *fiber.Ctx) error {
		return c.SendString("admin panel")
	})

	do := func() *http.Response {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
		require.NoError(t, err)
		return resp
	}

	snap = Snapshot{Resolved: false}
	resp := do()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))

	snap = Snapshot{Resolved: true, Session: domain.Anonymous()}
	resp = do()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, LoginPath, resp.Header.Get("Location"))

	snap = Snapshot{Resolved: true, Session: sessionFor(domain.RoleStudent)}
	resp = do()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, UnauthorizedPath, resp.Header.Get("Location"))

	snap = Snapshot{Resolved: true, Session: sessionFor(domain.RoleAdmin)}
	resp = do()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, recorder.decisions, 4)
	assert.Equal(t, string(StatePending), recorder.decisions[0].state)
	assert.Equal(t, string(StateGranted), recorder.decisions[3].state)
	assert.Equal(t, "/admin", recorder.decisions[3].path)
}
