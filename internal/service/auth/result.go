package auth

import (
	"time"

	"github.com/heartmarshall/realty-crm/internal/domain"
)

// AuthResult is returned by SignIn and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresIn    time.Duration
	User         *domain.User
}

// SignUpResult is returned by SignUp. No tokens are issued until the
// identity signs in.
type SignUpResult struct {
	User                *domain.User
	PendingConfirmation bool
}
