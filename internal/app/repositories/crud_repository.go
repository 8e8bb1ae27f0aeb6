package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

// DBTX is the part of *pgxpool.Pool the repositories use. Every call checks a
// connection out of the pool and returns it before the call completes.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// tableSpec maps one entity type onto its table. It is the only place where
// entity fields meet columns: values and scan hand pgx the optional fields as
// pointers, so nil is written as NULL and NULL is read back as nil.
type tableSpec[T any] struct {
	name   string
	entity string
	// columns written by insert and update, in values order
	columns []string
	// generated columns read back after insert besides id
	generated []string
	// returnedColumns overrides the RETURNING list, id plus generated by default
	returnedColumns []string
	orderBy         []string

	id     func(*T) int64
	values func(*T) []interface{}
	// scan returns destinations for id, columns, generated in that order
	scan func(*T) []interface{}
	// returned returns destinations for the returning columns, in order
	returned func(*T) []interface{}
}

func (t tableSpec[T]) selectColumns() []string {
	cols := make([]string, 0, 1+len(t.columns)+len(t.generated))
	cols = append(cols, "id")
	cols = append(cols, t.columns...)
	return append(cols, t.generated...)
}

// qualifiedColumns prefixes the select list with a table alias for joins
func (t tableSpec[T]) qualifiedColumns(alias string) []string {
	cols := t.selectColumns()
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return cols
}

func (t tableSpec[T]) returningColumns() []string {
	if len(t.returnedColumns) > 0 {
		return t.returnedColumns
	}
	return append([]string{"id"}, t.generated...)
}

func (t tableSpec[T]) returning() string {
	return "RETURNING " + strings.Join(t.returningColumns(), ", ")
}

// crudRepository implements findById/findAll/insert/update/delete once for
// every entity; the entity repositories embed it and add their selectors.
type crudRepository[T any] struct {
	db    DBTX
	sb    squirrel.StatementBuilderType
	table tableSpec[T]
}

func newCrudRepository[T any](db DBTX, table tableSpec[T]) *crudRepository[T] {
	return &crudRepository[T]{
		db:    db,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		table: table,
	}
}

func (r *crudRepository[T]) selectAll() squirrel.SelectBuilder {
	return r.sb.Select(r.table.selectColumns()...).From(r.table.name)
}

func (r *crudRepository[T]) fail(err error, format string, args ...interface{}) error {
	dae := apperrors.NewDataAccessError(err, format, args...)
	logger.Error().Err(err).Str("table", r.table.name).Msg("Error " + dae.Op)
	return dae
}

// one runs a single row query. A missing row is not an error: it yields nil.
func (r *crudRepository[T]) one(ctx context.Context, qb squirrel.SelectBuilder, op string) (*T, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, r.fail(err, "building query for %s", op)
	}

	entity := new(T)
	err = r.db.QueryRow(ctx, query, args...).Scan(r.table.scan(entity)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, r.fail(err, "%s", op)
	}
	return entity, nil
}

// many runs a list query. No rows yields an empty, non-nil slice.
func (r *crudRepository[T]) many(ctx context.Context, qb squirrel.SelectBuilder, op string) ([]*T, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, r.fail(err, "building query for %s", op)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.fail(err, "%s", op)
	}
	defer rows.Close()

	result := []*T{}
	for rows.Next() {
		entity := new(T)
		if err := rows.Scan(r.table.scan(entity)...); err != nil {
			return nil, r.fail(err, "scanning row while %s", op)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(err, "iterating rows while %s", op)
	}
	return result, nil
}

// FindByID returns nil without error when no row has this id
func (r *crudRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return r.one(ctx,
		r.selectAll().Where(squirrel.Eq{"id": id}),
		fmt.Sprintf("finding %s by id %d", r.table.entity, id))
}

// FindAll returns every row in the table's documented order
func (r *crudRepository[T]) FindAll(ctx context.Context) ([]*T, error) {
	return r.many(ctx,
		r.selectAll().OrderBy(r.table.orderBy...),
		fmt.Sprintf("loading all %ss", r.table.entity))
}

// findWhere runs a selector query with the given ordering
func (r *crudRepository[T]) findWhere(ctx context.Context, pred squirrel.Sqlizer, op string, orderBy ...string) ([]*T, error) {
	return r.many(ctx, r.selectAll().Where(pred).OrderBy(orderBy...), op)
}

// Insert writes entity, ignoring any id it already carries, and fills in the
// generated id and generated columns. The same pointer is returned.
func (r *crudRepository[T]) Insert(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, apperrors.NewInvalidArgumentError("%s must not be nil", r.table.entity)
	}

	query, args, err := r.sb.Insert(r.table.name).
		Columns(r.table.columns...).
		Values(r.table.values(entity)...).
		Suffix(r.table.returning()).
		ToSql()
	if err != nil {
		return nil, r.fail(err, "building insert for %s %v", r.table.entity, entity)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(r.table.returned(entity)...); err != nil {
		return nil, r.fail(err, "inserting %s %v", r.table.entity, entity)
	}
	return entity, nil
}

// Update replaces every mutable column. It reports whether a row changed.
func (r *crudRepository[T]) Update(ctx context.Context, entity *T) (bool, error) {
	if entity == nil {
		return false, apperrors.NewInvalidArgumentError("%s must not be nil", r.table.entity)
	}
	id := r.table.id(entity)
	if id <= 0 {
		return false, apperrors.NewInvalidArgumentError("%s id must be set for update", r.table.entity)
	}

	values := r.table.values(entity)
	set := make(map[string]interface{}, len(r.table.columns))
	for i, col := range r.table.columns {
		set[col] = values[i]
	}

	query, args, err := r.sb.Update(r.table.name).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, r.fail(err, "building update for %s %d", r.table.entity, id)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, r.fail(err, "updating %s %v", r.table.entity, entity)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the row with this id. A missing id reports false.
func (r *crudRepository[T]) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.sb.Delete(r.table.name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, r.fail(err, "building delete for %s %d", r.table.entity, id)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, r.fail(err, "deleting %s with id %d", r.table.entity, id)
	}
	return tag.RowsAffected() > 0, nil
}
