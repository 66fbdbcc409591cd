// Package user persists identities: credentials, role, confirmation state
// and the session generation used to invalidate access tokens.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	"github.com/heartmarshall/realty-crm/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "email", "full_name", "role", "password_hash",
	"confirmed_at", "session_generation", "created_at", "updated_at",
}

// Repo provides identity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns an identity by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail matches the address case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Expr("lower(email) = lower(?)", email), email)
}

// Create inserts a new identity and returns it as persisted.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := psql.Insert("users").
		SetMap(map[string]any{
			"id":            u.ID,
			"email":         u.Email,
			"full_name":     u.FullName,
			"role":          u.Role.String(),
			"password_hash": u.PasswordHash,
			"confirmed_at":  u.ConfirmedAt,
		}).
		Suffix("RETURNING " + joinColumns())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	created, err := scanUser(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// Confirm marks the identity as confirmed. Confirming twice keeps the first
// timestamp.
func (r *Repo) Confirm(ctx context.Context, id uuid.UUID, at time.Time) error {
	sql, args, err := psql.Update("users").
		Set("confirmed_at", sq.Expr("COALESCE(confirmed_at, ?)", at)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user confirm: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// SessionOf reads the role and current session generation in one round trip.
// The role is returned raw; callers decide how to treat values outside the
// closed set.
func (r *Repo) SessionOf(ctx context.Context, id uuid.UUID) (string, int64, error) {
	sql, args, err := psql.Select("role", "session_generation").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", 0, fmt.Errorf("build session select: %w", err)
	}

	var (
		role string
		gen  int64
	)
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&role, &gen); err != nil {
		return "", 0, postgres.MapError(err, "user", id)
	}
	return role, gen, nil
}

// BumpGeneration increments the session generation and returns the new value.
func (r *Repo) BumpGeneration(ctx context.Context, id uuid.UUID) (int64, error) {
	sql, args, err := psql.Update("users").
		Set("session_generation", sq.Expr("session_generation + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING session_generation").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build generation bump: %w", err)
	}

	var gen int64
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&gen); err != nil {
		return 0, postgres.MapError(err, "user", id)
	}
	return gen, nil
}

// SetRole replaces the identity's role.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	sql, args, err := psql.Update("users").
		Set("role", role.String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build role update: %w", err)
	}

	u, err := scanUser(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// List returns identities ordered by creation time, oldest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	var total int64
	if err := r.q(ctx).QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "user", "count")
	}

	query := psql.Select(columns...).From("users").OrderBy("created_at ASC", "id ASC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	if offset > 0 {
		query = query.Offset(uint64(offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build user list: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "user", "list")
	}
	defer rows.Close()

	users := make([]domain.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "user", "list")
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "user", "list")
	}

	return users, int(total), nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.User, error) {
	sql, args, err := psql.Select(columns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user select: %w", err)
	}

	u, err := scanUser(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return u, nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

// scanUser reads one row in the order of columns. The stored role is kept
// as-is even when it falls outside the closed set.
func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &role, &u.PasswordHash,
		&u.ConfirmedAt, &u.SessionGeneration, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}
