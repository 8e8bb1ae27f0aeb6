package repositories

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type call struct {
	sql  string
	args []any
}

// fakeDB answers queries from canned rows in call order
type fakeDB struct {
	calls   []call
	rows    [][][]any
	execTag pgconn.CommandTag
	err     error
}

func (f *fakeDB) record(sql string, args []any) {
	f.calls = append(f.calls, call{sql: sql, args: args})
}

func (f *fakeDB) next() [][]any {
	if len(f.rows) == 0 {
		return nil
	}
	r := f.rows[0]
	f.rows = f.rows[1:]
	return r
}

func (f *fakeDB) last() call {
	return f.calls[len(f.calls)-1]
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.record(sql, args)
	return f.execTag, f.err
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(sql, args)
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{data: f.next(), pos: -1}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.record(sql, args)
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	data := f.next()
	if len(data) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	if cols := returningColumns(sql); cols != nil && len(cols) != len(data[0]) {
		return fakeRow{err: fmt.Errorf("RETURNING names %d columns, canned row has %d", len(cols), len(data[0]))}
	}
	return fakeRow{values: data[0]}
}

// returningColumns lists the RETURNING clause of sql, nil when there is none.
// Postgres sends exactly these columns back.
func returningColumns(sql string) []string {
	i := strings.Index(sql, "RETURNING ")
	if i < 0 {
		return nil
	}
	cols := strings.Split(sql[i+len("RETURNING "):], ",")
	for j := range cols {
		cols[j] = strings.TrimSpace(cols[j])
	}
	return cols
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

type fakeRows struct {
	data [][]any
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.data[r.pos], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(dest, r.data[r.pos])
}

// assign mimics pgx scanning: nil clears pointer targets, plain values are
// stored directly or behind a freshly allocated pointer.
func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(target.Type()):
			target.Set(v)
		case target.Kind() == reflect.Ptr && v.Type().AssignableTo(target.Type().Elem()):
			p := reflect.New(target.Type().Elem())
			p.Elem().Set(v)
			target.Set(p)
		default:
			return fmt.Errorf("scan: cannot assign %T to %s", values[i], target.Type())
		}
	}
	return nil
}
