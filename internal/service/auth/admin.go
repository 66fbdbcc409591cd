package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/pkg/ctxutil"
)

const defaultPageSize = 50

// ListIdentities returns a page of identities, oldest first (admin only).
func (s *Service) ListIdentities(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}

	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	users, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("auth.ListIdentities: %w", err)
	}
	return users, total, nil
}

// AssignRole changes the role of an identity (admin only). An admin cannot
// drop its own admin role.
func (s *Service) AssignRole(ctx context.Context, input AssignRoleInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	role, _ := domain.ParseRole(input.Role)

	if callerID == input.UserID && !role.IsAdmin() {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	user, err := s.users.SetRole(ctx, input.UserID, role)
	if err != nil {
		return nil, fmt.Errorf("auth.AssignRole: %w", err)
	}

	s.log.InfoContext(ctx, "role assigned",
		slog.String("target_user_id", input.UserID.String()),
		slog.String("new_role", role.String()))

	return user, nil
}
