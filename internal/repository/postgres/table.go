package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
)

type scanner interface {
	Scan(dest ...any) error
}

// table describes how one entity maps onto its relation. columns excludes
// the id column, which is always first in SELECT lists and assigned by the
// store on insert.
type table[E any] struct {
	entity  domain.Entity
	name    string
	columns []string
	id      func(e *E) *int64
	// scan reads id followed by columns, in order.
	scan func(sc scanner, e *E) error
	// values returns the column values in the order of columns.
	values func(e *E) []any
}

func (t *table[E]) selectSQL() string {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(t.columns, ", "), t.name)
}

func (t *table[E]) insertSQL() string {
	placeholders := make([]string, len(t.columns))
	for i := range t.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "))
}

func (t *table[E]) updateSQL() string {
	sets := make([]string, len(t.columns))
	for i, col := range t.columns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", t.name, strings.Join(sets, ", "), len(t.columns)+1)
}

// crud implements repository.CRUD for any table.
type crud[E any] struct {
	q DBTX
	t *table[E]
}

func (r *crud[E]) method(name string) string {
	return r.t.name + "." + name
}

func (r *crud[E]) List(ctx context.Context) ([]E, error) {
	return r.query(ctx, r.method("List"), r.t.selectSQL()+" ORDER BY id")
}

// query runs a SELECT over the table's column list and scans every row.
func (r *crud[E]) query(ctx context.Context, method, query string, args ...any) ([]E, error) {
	logger.EnterMethod(method)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.ExitMethodWithError(method, err)
		return nil, translateError(err, r.t.entity, 0)
	}
	defer rows.Close()

	items := []E{}
	for rows.Next() {
		var e E
		if err := r.t.scan(rows, &e); err != nil {
			logger.ExitMethodWithError(method, err)
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		logger.ExitMethodWithError(method, err)
		return nil, err
	}

	logger.ExitMethod(method, "count", len(items))
	return items, nil
}

func (r *crud[E]) GetByID(ctx context.Context, id int64) (*E, error) {
	return r.get(ctx, r.method("GetByID"), r.t.selectSQL()+" WHERE id = $1", id)
}

func (r *crud[E]) GetByIDForUpdate(ctx context.Context, id int64) (*E, error) {
	return r.get(ctx, r.method("GetByIDForUpdate"), r.t.selectSQL()+" WHERE id = $1 FOR UPDATE", id)
}

func (r *crud[E]) get(ctx context.Context, method, query string, id int64) (*E, error) {
	logger.EnterMethod(method, "id", id)

	var e E
	if err := r.t.scan(r.q.QueryRowContext(ctx, query, id), &e); err != nil {
		err = translateError(err, r.t.entity, id)
		logger.ExitMethodRejected(method, err, "id", id)
		return nil, err
	}

	logger.ExitMethod(method, "id", id)
	return &e, nil
}

func (r *crud[E]) Create(ctx context.Context, e *E) error {
	method := r.method("Create")
	logger.EnterMethod(method)

	query := r.t.insertSQL()
	logger.DatabaseCall("INSERT", query)
	if err := r.q.QueryRowContext(ctx, query, r.t.values(e)...).Scan(r.t.id(e)); err != nil {
		logger.ExitMethodWithError(method, err)
		return translateError(err, r.t.entity, 0)
	}

	logger.ExitMethod(method, "id", *r.t.id(e))
	return nil
}

func (r *crud[E]) Update(ctx context.Context, e *E) error {
	method := r.method("Update")
	id := *r.t.id(e)
	logger.EnterMethod(method, "id", id)

	query := r.t.updateSQL()
	args := append(r.t.values(e), id)
	logger.DatabaseCall("UPDATE", query, "id", id)
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ExitMethodWithError(method, err, "id", id)
		return translateError(err, r.t.entity, id)
	}
	return r.expectOneRow(method, res, id)
}

func (r *crud[E]) Delete(ctx context.Context, id int64) error {
	method := r.method("Delete")
	logger.EnterMethod(method, "id", id)

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.t.name)
	logger.DatabaseCall("DELETE", query, "id", id)
	res, err := r.q.ExecContext(ctx, query, id)
	if err != nil {
		logger.ExitMethodWithError(method, err, "id", id)
		return translateDeleteError(err, r.t.entity, id)
	}
	return r.expectOneRow(method, res, id)
}

func (r *crud[E]) expectOneRow(method string, res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	logger.DatabaseResult(method, n, err, "id", id)
	if err != nil {
		return err
	}
	if n == 0 {
		err := domain.NotFound(r.t.entity, id)
		logger.ExitMethodRejected(method, err, "id", id)
		return err
	}
	logger.ExitMethod(method, "id", id)
	return nil
}
