package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/realty-crm/internal/domain"
)

// SignIn authenticates with email + password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong,
// and ErrPendingConfirmation if the identity has not confirmed its email.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.SignIn get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if s.cfg.RequireConfirmation && !user.IsConfirmed() {
		return nil, domain.ErrPendingConfirmation
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "identity signed in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
