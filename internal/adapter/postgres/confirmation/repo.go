// Package confirmation persists one-time email confirmation tokens.
package confirmation

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores the hash of a confirmation token for userID.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, hash string, expiresAt time.Time) error {
	sql, args, err := psql.Insert("confirmation_tokens").
		Columns("token_hash", "user_id", "expires_at").
		Values(hash, userID, expiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build confirmation insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "confirmation_token", userID)
	}
	return nil
}

// Consume deletes an unexpired token and returns its owner. Unknown, used and
// expired tokens yield domain.ErrNotFound.
func (r *Repo) Consume(ctx context.Context, hash string) (uuid.UUID, error) {
	sql, args, err := psql.Delete("confirmation_tokens").
		Where(sq.Eq{"token_hash": hash}).
		Where("expires_at > now()").
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build confirmation consume: %w", err)
	}

	var userID uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&userID); err != nil {
		return uuid.Nil, postgres.MapError(err, "confirmation_token", "by hash")
	}
	return userID, nil
}
