package record

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/pkg/ctxutil"
)

const ownerColumn = "user_id"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Store is the owner-scoped gateway to one collection. Every statement it
// issues is restricted to the identity found in the context, so a row owned
// by someone else behaves exactly like a missing row.
type Store[T any] struct {
	db    postgres.Querier
	table Table
}

// NewStore binds a row type to its table. T is scanned by column name, so
// its db tags must match table.Columns.
func NewStore[T any](db postgres.Querier, table Table) *Store[T] {
	return &Store[T]{db: db, table: table}
}

// Table returns the descriptor the store was built with.
func (s *Store[T]) Table() Table { return s.table }

func (s *Store[T]) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, s.db)
}

func owner(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// List returns the caller's rows matching f in the table's order.
func (s *Store[T]) List(ctx context.Context, f domain.RecordFilter) ([]T, error) {
	userID, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	query := s.filtered(psql.Select(s.table.Columns...).From(s.table.Name), userID, f)
	if len(s.table.OrderBy) > 0 {
		query = query.OrderBy(s.table.OrderBy...)
	}
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}

	return s.collect(ctx, query)
}

// Get returns one row by id.
func (s *Store[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	userID, err := owner(ctx)
	if err != nil {
		return zero, err
	}

	query := psql.Select(s.table.Columns...).
		From(s.table.Name).
		Where(sq.Eq{"id": id, ownerColumn: userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return zero, fmt.Errorf("build %s select: %w", s.table.Entity, err)
	}

	rows, err := s.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return zero, postgres.MapError(err, s.table.Entity, id)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, postgres.MapError(err, s.table.Entity, id)
	}
	return item, nil
}

// GetMany returns the caller's rows among ids, in no particular order.
// Unknown and foreign ids are skipped.
func (s *Store[T]) GetMany(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	userID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []T{}, nil
	}

	query := psql.Select(s.table.Columns...).
		From(s.table.Name).
		Where(sq.Eq{"id": ids, ownerColumn: userID})

	return s.collect(ctx, query)
}

// Count returns the number of the caller's rows matching f. Limit is ignored.
func (s *Store[T]) Count(ctx context.Context, f domain.RecordFilter) (int, error) {
	userID, err := owner(ctx)
	if err != nil {
		return 0, err
	}

	sql, args, err := s.filtered(psql.Select("count(*)").From(s.table.Name), userID, f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count: %w", s.table.Entity, err)
	}

	var n int64
	if err := s.q(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, s.table.Entity, "count")
	}
	return int(n), nil
}

// CountBy groups the caller's rows by column. NULL is reported under "".
func (s *Store[T]) CountBy(ctx context.Context, column string) (map[string]int, error) {
	userID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if !s.table.hasColumn(column) {
		return nil, domain.NewValidationError(column, "unknown column")
	}

	query := psql.Select(fmt.Sprintf("COALESCE(%s::text, '')", column), "count(*)").
		From(s.table.Name).
		Where(sq.Eq{ownerColumn: userID}).
		GroupBy("1")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s count by %s: %w", s.table.Entity, column, err)
	}

	rows, err := s.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, s.table.Entity, column)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			bucket string
			n      int64
		)
		if err := rows.Scan(&bucket, &n); err != nil {
			return nil, postgres.MapError(err, s.table.Entity, column)
		}
		counts[bucket] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, s.table.Entity, column)
	}
	return counts, nil
}

// Insert stores a new row owned by the caller and returns it as persisted.
func (s *Store[T]) Insert(ctx context.Context, values map[string]any) (T, error) {
	var zero T
	userID, err := owner(ctx)
	if err != nil {
		return zero, err
	}
	if err := s.checkWritable(values); err != nil {
		return zero, err
	}

	set := withOwner(values, userID)
	query := psql.Insert(s.table.Name).
		SetMap(set).
		Suffix("RETURNING " + strings.Join(s.table.Columns, ", "))

	return s.returningOne(ctx, query, "new")
}

// Update changes the given columns of one of the caller's rows and returns
// the row as persisted. A missing or foreign id yields domain.ErrNotFound.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, values map[string]any) (T, error) {
	var zero T
	userID, err := owner(ctx)
	if err != nil {
		return zero, err
	}
	if len(values) == 0 {
		return zero, domain.NewValidationError("values", "nothing to update")
	}
	if err := s.checkWritable(values); err != nil {
		return zero, err
	}

	query := psql.Update(s.table.Name).SetMap(values)
	if s.table.Touch {
		query = query.Set("updated_at", sq.Expr("now()"))
	}
	query = query.
		Where(sq.Eq{"id": id, ownerColumn: userID}).
		Suffix("RETURNING " + strings.Join(s.table.Columns, ", "))

	return s.returningOne(ctx, query, id)
}

// Delete removes one of the caller's rows. Deleting a row that does not
// exist, or is not the caller's, reports removed=false without error.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	userID, err := owner(ctx)
	if err != nil {
		return false, err
	}

	sql, args, err := psql.Delete(s.table.Name).
		Where(sq.Eq{"id": id, ownerColumn: userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s delete: %w", s.table.Entity, err)
	}

	tag, err := s.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, s.table.Entity, id)
	}
	return tag.RowsAffected() > 0, nil
}

// Upsert inserts rows keyed by their "id" value and overwrites existing ones.
// Ownership is forced to the caller; a conflicting row owned by another
// identity is left untouched and not counted. It returns the number of rows
// written.
func (s *Store[T]) Upsert(ctx context.Context, rows []map[string]any) (int, error) {
	userID, err := owner(ctx)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i, row := range rows {
		id, ok := row["id"].(uuid.UUID)
		if !ok || id == uuid.Nil {
			return 0, domain.NewValidationError(fmt.Sprintf("rows[%d].id", i), "required")
		}

		values := make(map[string]any, len(row))
		for k, v := range row {
			if k != "id" {
				values[k] = v
			}
		}
		if err := s.checkWritable(values); err != nil {
			return 0, err
		}

		set := withOwner(values, userID)
		set["id"] = id

		sql, args, err := psql.Insert(s.table.Name).
			SetMap(set).
			Suffix(s.conflictClause(values)).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build %s upsert: %w", s.table.Entity, err)
		}
		batch.Queue(sql, args...)
	}

	results := s.q(ctx).SendBatch(ctx, batch)
	defer results.Close()

	written := 0
	for range rows {
		tag, err := results.Exec()
		if err != nil {
			return written, postgres.MapError(err, s.table.Entity, "upsert")
		}
		written += int(tag.RowsAffected())
	}
	return written, nil
}

func (s *Store[T]) conflictClause(values map[string]any) string {
	cols := make([]string, 0, len(values))
	for col := range values {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	assignments := make([]string, 0, len(cols)+1)
	for _, col := range cols {
		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	if s.table.Touch {
		assignments = append(assignments, "updated_at = now()")
	}
	if len(assignments) == 0 {
		return "ON CONFLICT (id) DO NOTHING"
	}

	return fmt.Sprintf("ON CONFLICT (id) DO UPDATE SET %s WHERE %s.%s = EXCLUDED.%s",
		strings.Join(assignments, ", "), s.table.Name, ownerColumn, ownerColumn)
}

func (s *Store[T]) filtered(query sq.SelectBuilder, userID uuid.UUID, f domain.RecordFilter) sq.SelectBuilder {
	query = query.Where(sq.Eq{ownerColumn: userID})

	if term := strings.TrimSpace(f.Search); term != "" && len(s.table.SearchColumns) > 0 {
		pattern := "%" + escapeLike(term) + "%"
		or := make(sq.Or, 0, len(s.table.SearchColumns))
		for _, col := range s.table.SearchColumns {
			or = append(or, sq.ILike{col: pattern})
		}
		query = query.Where(or)
	}

	if f.HasFacet() && s.table.FacetColumn != "" {
		query = query.Where(sq.Eq{s.table.FacetColumn: f.Facet})
	}
	return query
}

func (s *Store[T]) collect(ctx context.Context, query sq.SelectBuilder) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s select: %w", s.table.Entity, err)
	}

	rows, err := s.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, s.table.Entity, "list")
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, postgres.MapError(err, s.table.Entity, "list")
	}
	return items, nil
}

func (s *Store[T]) returningOne(ctx context.Context, query sq.Sqlizer, key any) (T, error) {
	var zero T
	sql, args, err := query.ToSql()
	if err != nil {
		return zero, fmt.Errorf("build %s write: %w", s.table.Entity, err)
	}

	rows, err := s.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return zero, postgres.MapError(err, s.table.Entity, key)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, postgres.MapError(err, s.table.Entity, key)
	}
	return item, nil
}

func (s *Store[T]) checkWritable(values map[string]any) error {
	var errs []domain.FieldError
	for col := range values {
		if !s.table.isWritable(col) {
			errs = append(errs, domain.FieldError{Field: col, Message: "not a writable column"})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return domain.NewValidationErrors(errs)
}

func withOwner(values map[string]any, userID uuid.UUID) map[string]any {
	set := make(map[string]any, len(values)+1)
	for k, v := range values {
		set[k] = v
	}
	set[ownerColumn] = userID
	return set
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
