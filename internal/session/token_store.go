package session

import (
	"context"
	"fmt"
	"time"

	"github.com/spec-kit/campus-portal/internal/domain"
	"github.com/spec-kit/campus-portal/internal/persistence"
)

// Slot names inside a client's namespace.
const (
	TokenKey = "jwtToken"
	RoleKey  = "userRole"
)

// TokenStore is the credential slot of one browser client.
type TokenStore struct {
	kv       persistence.KeyValueStore
	tokenKey string
	roleKey  string
	ttl      time.Duration
}

// NewTokenStore scopes kv to clientID under prefix.
func NewTokenStore(kv persistence.KeyValueStore, prefix, clientID string, ttl time.Duration) *TokenStore {
	return &TokenStore{
		kv:       kv,
		tokenKey: fmt.Sprintf("%s:%s:%s", prefix, clientID, TokenKey),
		roleKey:  fmt.Sprintf("%s:%s:%s", prefix, clientID, RoleKey),
		ttl:      ttl,
	}
}

// Save overwrites the stored credential.
func (s *TokenStore) Save(ctx context.Context, credential string) error {
	return s.kv.Set(ctx, s.tokenKey, credential, s.ttl)
}

// Read returns the stored credential without parsing it.
func (s *TokenStore) Read(ctx context.Context) (string, bool, error) {
	credential, ok, err := s.kv.Get(ctx, s.tokenKey)
	if err != nil || !ok || credential == "" {
		return "", false, err
	}
	return credential, true, nil
}

// Clear removes the credential and the cached role.
func (s *TokenStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, s.tokenKey, s.roleKey)
}

// SaveRole caches the role for display. It is never used for authorization.
func (s *TokenStore) SaveRole(ctx context.Context, role domain.Role) error {
	if role == "" {
		return s.kv.Delete(ctx, s.roleKey)
	}
	return s.kv.Set(ctx, s.roleKey, string(role), s.ttl)
}

// CachedRole returns the display-only role, if any.
func (s *TokenStore) CachedRole(ctx context.Context) (domain.Role, bool, error) {
	role, ok, err := s.kv.Get(ctx, s.roleKey)
	if err != nil || !ok {
		return "", false, err
	}
	return domain.Role(role), true, nil
}
