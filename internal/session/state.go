// Package session owns the per-identity session state: who is signed in,
// with which role and session generation. The Provider is the only writer;
// requests carry an immutable State snapshot in their context.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/internal/navigation"
)

// State is the session of one request. The zero value is Unauthenticated.
type State struct {
	Authenticated bool
	UserID        uuid.UUID
	// Role is empty when it could not be resolved; navigation then falls
	// back to the least privileged set.
	Role       domain.Role
	Generation int64
}

// Unauthenticated is the state of anonymous requests.
var Unauthenticated = State{}

// EffectiveRole is the role navigation decisions are made with.
func (s State) EffectiveRole() domain.Role {
	return navigation.EffectiveRole(s.Role)
}

// String is used in logs.
func (s State) String() string {
	if !s.Authenticated {
		return "unauthenticated"
	}
	return fmt.Sprintf("authenticated(%s, role=%q)", s.UserID, s.Role)
}

type stateKey struct{}

// WithState attaches s to ctx.
func WithState(ctx context.Context, s State) context.Context {
	return context.WithValue(ctx, stateKey{}, s)
}

// FromContext returns the state attached by WithState, or Unauthenticated.
func FromContext(ctx context.Context) State {
	s, _ := ctx.Value(stateKey{}).(State)
	return s
}

// EventKind names a session transition.
type EventKind string

const (
	EventSignedIn    EventKind = "signed_in"
	EventSignedOut   EventKind = "signed_out"
	EventRoleChanged EventKind = "role_changed"
)

// Event is delivered to subscribers after a transition was applied.
type Event struct {
	Kind   EventKind   `json:"kind"`
	UserID uuid.UUID   `json:"user_id"`
	Role   domain.Role `json:"role,omitempty"`
	At     time.Time   `json:"at"`
}
