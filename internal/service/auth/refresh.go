package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/realty-crm/internal/auth"
	"github.com/heartmarshall/realty-crm/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued in the same transaction. Unknown, revoked and expired
// tokens, and tokens of deleted identities, all yield ErrUnauthorized. An
// identity that lost its confirmation gets ErrPendingConfirmation, as on
// sign-in.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *AuthResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		token, err := s.tokens.GetByHash(txCtx, auth.HashToken(input.RefreshToken))
		switch {
		case errors.Is(err, domain.ErrNotFound):
			s.log.WarnContext(ctx, "unknown or reused refresh token")
			return domain.ErrUnauthorized
		case err != nil:
			return fmt.Errorf("get token: %w", err)
		case token.IsExpired(s.now()):
			return domain.ErrUnauthorized
		}

		user, err := s.users.GetByID(txCtx, token.UserID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			s.log.WarnContext(ctx, "refresh for deleted identity", slog.String("user_id", token.UserID.String()))
			return domain.ErrUnauthorized
		case err != nil:
			return fmt.Errorf("get user: %w", err)
		case s.cfg.RequireConfirmation && !user.IsConfirmed():
			return domain.ErrPendingConfirmation
		}

		if err := s.tokens.RevokeByID(txCtx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}

		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}

	s.log.InfoContext(ctx, "refresh token rotated", slog.String("user_id", result.User.ID.String()))
	return result, nil
}
