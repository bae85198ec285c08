package domain

import "strings"

// Claims are the identity fields carried by a credential.
type Claims struct {
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	SubjectID string `json:"userId"`
	Name      string `json:"name,omitempty"`
}

// DisplayName returns the name claim, falling back to the local part of the email.
func (c Claims) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	local, _, _ := strings.Cut(c.Email, "@")
	return local
}

// Session is the portal's view of who is logged in.
type Session struct {
	Identity        *Claims
	IsAuthenticated bool
}

// Anonymous is the unauthenticated session.
func Anonymous() Session {
	return Session{}
}

// Authenticated builds a session for decoded claims.
func Authenticated(claims Claims) Session {
	return Session{Identity: &claims, IsAuthenticated: true}
}

// Role returns the session role or "" when anonymous.
func (s Session) Role() Role {
	if !s.IsAuthenticated || s.Identity == nil {
		return ""
	}
	return s.Identity.Role
}

// HasRole reports whether the session holds one of roles.
func (s Session) HasRole(roles ...Role) bool {
	current := s.Role()
	if current == "" {
		return false
	}
	for _, role := range roles {
		if role == current {
			return true
		}
	}
	return false
}

func (s Session) IsAdmin() bool   { return s.HasRole(RoleAdmin) }
func (s Session) IsFaculty() bool { return s.HasRole(RoleFaculty) }
func (s Session) IsStudent() bool { return s.HasRole(RoleStudent) }

// LoginRequest is sent to the authentication service.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the profile submitted on sign-up.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// AuthResult is the authentication service response.
type AuthResult struct {
	Token string `json:"token"`
}
