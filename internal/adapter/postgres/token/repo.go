// Package token persists hashed refresh tokens.
package token

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	"github.com/heartmarshall/realty-crm/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returning = "RETURNING id, user_id, token_hash, expires_at, created_at, revoked_at"

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create stores a refresh token hash and fills in the generated fields.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	sql, args, err := psql.Insert("refresh_tokens").
		Columns("user_id", "token_hash", "expires_at").
		Values(t.UserID, t.TokenHash, t.ExpiresAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return fmt.Errorf("build refresh token insert: %w", err)
	}

	row := r.q(ctx).QueryRow(ctx, sql, args...)
	if err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt); err != nil {
		return postgres.MapError(err, "refresh_token", t.UserID)
	}
	return nil
}

// GetByHash returns an active token. Revoked and expired tokens are reported
// as domain.ErrNotFound.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	sql, args, err := psql.Select("id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at").
		From("refresh_tokens").
		Where(sq.Eq{"token_hash": hash, "revoked_at": nil}).
		Where("expires_at > now()").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build refresh token select: %w", err)
	}

	var t domain.RefreshToken
	err = r.q(ctx).QueryRow(ctx, sql, args...).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", "by hash")
	}
	return &t, nil
}

// RevokeByID is idempotent.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Update("refresh_tokens").
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build refresh token revoke: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllByUser revokes every active token of the identity.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := psql.Update("refresh_tokens").
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build refresh token revoke all: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes expired and revoked tokens and returns how many
// were deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	sql, args, err := psql.Delete("refresh_tokens").
		Where(sq.Or{sq.Expr("expires_at <= now()"), sq.NotEq{"revoked_at": nil}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build refresh token cleanup: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "cleanup")
	}
	return int(tag.RowsAffected()), nil
}
