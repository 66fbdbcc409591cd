package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated identity. Exactly one role is resolved per session.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	Role         Role
	PasswordHash string
	ConfirmedAt  *time.Time
	// SessionGeneration is embedded in access tokens. Bumping it on
	// sign-out invalidates every token issued before.
	SessionGeneration int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsConfirmed reports whether the identity finished email confirmation.
func (u *User) IsConfirmed() bool {
	return u.ConfirmedAt != nil
}

// RefreshToken represents a stored refresh token for session management.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
