package session

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/campus-portal/internal/auth"
	"github.com/spec-kit/campus-portal/internal/domain"
	"github.com/spec-kit/campus-portal/internal/events"
	apperrors "github.com/spec-kit/campus-portal/pkg/util"
)

// State is the derived session of one browser client.
// It starts unresolved and is recomputed whenever the credential slot changes.
type State struct {
	svc      *Service
	clientID string
	store    *TokenStore

	mu       sync.RWMutex
	resolved bool
	session  domain.Session
}

// ClientID identifies the browser this state belongs to.
func (st *State) ClientID() string {
	return st.clientID
}

// Store exposes the credential slot, e.g. as the token source of remote calls.
func (st *State) Store() *TokenStore {
	return st.store
}

// Snapshot returns the guard input.
func (st *State) Snapshot() auth.Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return auth.Snapshot{Resolved: st.resolved, Session: st.session}
}

// Session returns the current value; anonymous while unresolved.
func (st *State) Session() domain.Session {
	return st.Snapshot().Session
}

// Resolve derives the session from the stored credential.
// A storage failure leaves the state unresolved and is returned.
func (st *State) Resolve(ctx context.Context) (domain.Session, error) {
	return st.recompute(ctx, events.ReasonResolved)
}

// Login exchanges credentials for a stored credential. The bool reports whether
// a usable credential was obtained; a refused attempt returns *AuthFailure and
// leaves the session untouched.
func (st *State) Login(ctx context.Context, req domain.LoginRequest) (bool, error) {
	result, err := st.svc.authn.Login(ctx, req)
	return st.complete(ctx, result, err, events.ReasonLogin, "Login failed")
}

// Register is the sign-up counterpart of Login.
func (st *State) Register(ctx context.Context, req domain.RegisterRequest) (bool, error) {
	result, err := st.svc.authn.Register(ctx, req)
	return st.complete(ctx, result, err, events.ReasonRegister, "Registration failed")
}

// Logout clears the slot and resets the session. It never calls the network.
func (st *State) Logout(ctx context.Context) error {
	err := st.store.Clear(ctx)
	anon := domain.Anonymous()
	st.set(anon)
	st.svc.publish(ctx, st.clientID, events.ReasonLogout, anon)
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func (st *State) complete(ctx context.Context, result domain.AuthResult, callErr error, reason events.Reason, fallback string) (bool, error) {
	// the request that started the call is gone; its result must not touch the slot
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if callErr != nil {
		message := apperrors.Message(callErr)
		if message == "" {
			message = fallback
		}
		return false, &AuthFailure{Message: message, Err: callErr}
	}
	if result.Token == "" {
		return false, nil
	}

	if err := st.store.Save(ctx, result.Token); err != nil {
		return false, fmt.Errorf("save credential: %w", err)
	}
	session, err := st.recompute(ctx, reason)
	if err != nil {
		return false, err
	}
	return session.IsAuthenticated, nil
}

func (st *State) recompute(ctx context.Context, reason events.Reason) (domain.Session, error) {
	credential, ok, err := st.store.Read(ctx)
	if err != nil {
		return domain.Anonymous(), fmt.Errorf("read credential: %w", err)
	}
	if !ok {
		return st.apply(ctx, reason, domain.Anonymous()), nil
	}

	claims, err := st.svc.decoder.Decode(credential)
	if err != nil {
		st.svc.logger.Warn("discarding undecodable credential",
			zap.String("client_id", st.clientID), zap.Error(err))
		if clearErr := st.store.Clear(ctx); clearErr != nil {
			st.svc.logger.Error("failed to clear credential", zap.String("client_id", st.clientID), zap.Error(clearErr))
		}
		return st.apply(ctx, events.ReasonDecodeFailure, domain.Anonymous()), nil
	}

	return st.apply(ctx, reason, domain.Authenticated(claims)), nil
}

// apply stores the new value and notifies subscribers when the slot changed.
func (st *State) apply(ctx context.Context, reason events.Reason, session domain.Session) domain.Session {
	st.set(session)
	if reason != events.ReasonResolved {
		st.svc.publish(ctx, st.clientID, reason, session)
	}
	return session
}

func (st *State) set(session domain.Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.session = session
	st.resolved = true
}
