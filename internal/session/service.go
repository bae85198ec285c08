package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/campus-portal/internal/auth"
	"github.com/spec-kit/campus-portal/internal/domain"
	"github.com/spec-kit/campus-portal/internal/events"
	"github.com/spec-kit/campus-portal/internal/persistence"
)

// Authenticator issues credentials. Implemented by the remote auth service client.
type Authenticator interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResult, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResult, error)
}

// Options tunes slot naming and retention.
type Options struct {
	KeyPrefix string
	TTL       time.Duration
}

// Service builds per-client session states and owns the session change subscribers.
type Service struct {
	kv          persistence.KeyValueStore
	decoder     auth.Decoder
	authn       Authenticator
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	opts        Options
	unsubscribe []func()
}

// NewService wires the service and subscribes the role cache and the transition log.
func NewService(kv persistence.KeyValueStore, decoder auth.Decoder, authn Authenticator, dispatcher events.Dispatcher, logger *zap.Logger, opts Options) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "campus"
	}
	s := &Service{
		kv:         kv,
		decoder:    decoder,
		authn:      authn,
		dispatcher: dispatcher,
		logger:     logger,
		opts:       opts,
	}
	s.unsubscribe = append(s.unsubscribe,
		dispatcher.Subscribe(events.EventSessionChanged, s.cacheRole),
		dispatcher.Subscribe(events.EventSessionChanged, s.logTransition),
	)
	return s
}

// ForClient returns an unresolved state bound to one browser client.
func (s *Service) ForClient(clientID string) *State {
	return &State{svc: s, clientID: clientID, store: s.storeFor(clientID)}
}

// Close detaches the service's subscribers.
func (s *Service) Close() {
	for _, fn := range s.unsubscribe {
		fn()
	}
	s.unsubscribe = nil
}

func (s *Service) storeFor(clientID string) *TokenStore {
	return NewTokenStore(s.kv, s.opts.KeyPrefix, clientID, s.opts.TTL)
}

func (s *Service) publish(ctx context.Context, clientID string, reason events.Reason, session domain.Session) {
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSessionChanged,
		ClientID:  clientID,
		Reason:    reason,
		Session:   session,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("session change handler failed", zap.String("client_id", clientID), zap.Error(err))
	}
}

func (s *Service) cacheRole(ctx context.Context, e events.Event) error {
	return s.storeFor(e.ClientID).SaveRole(ctx, e.Session.Role())
}

func (s *Service) logTransition(_ context.Context, e events.Event) error {
	s.logger.Debug("session changed",
		zap.String("client_id", e.ClientID),
		zap.String("reason", string(e.Reason)),
		zap.Bool("authenticated", e.Session.IsAuthenticated),
		zap.String("role", string(e.Session.Role())),
	)
	return nil
}
