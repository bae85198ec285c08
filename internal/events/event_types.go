package events

import (
	"time"

	"github.com/spec-kit/campus-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionChanged EventType = "session_changed"
)

// Reason says what triggered a session recomputation.
type Reason string

const (
	ReasonResolved      Reason = "resolved"
	ReasonLogin         Reason = "login"
	ReasonRegister      Reason = "register"
	ReasonLogout        Reason = "logout"
	ReasonDecodeFailure Reason = "decode_failure"
)

// Event is emitted whenever a client's session is recomputed.
type Event struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	ClientID  string         `json:"client_id"`
	Reason    Reason         `json:"reason"`
	Session   domain.Session `json:"session"`
	Timestamp time.Time      `json:"timestamp"`
}
