package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/realty-crm/internal/auth"
	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/pkg/ctxutil"
)

// SignOut revokes every refresh token of the caller and bumps its session
// generation, which invalidates all access tokens issued so far.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) SignOut(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeAllByUser(txCtx, userID); err != nil {
			return err
		}
		_, err := s.users.BumpGeneration(txCtx, userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("auth.SignOut: %w", err)
	}

	s.log.InfoContext(ctx, "identity signed out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken checks an access token's signature and expiry. Whether its
// session generation is still current is decided by the session provider.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (auth.Identity, error) {
	identity, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return auth.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}

// CleanupExpiredTokens removes expired and revoked refresh tokens and
// returns how many were deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}

	return count, nil
}
