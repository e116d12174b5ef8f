package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/pos_monedas/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeCall records one statement sent to fakeDB.
type fakeCall struct {
	sql  string
	args []any
}

// fakeDB is an in-memory DBTX that replays queued results in order.
type fakeDB struct {
	calls    []fakeCall
	rows     [][][]any // one result set per Query call
	row      [][]any   // one row per QueryRow call
	rowErrs  []error   // matched to row by index; nil means use row
	queryErr error
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, fakeCall{sql: sql, args: args})
	return pgconn.NewCommandTag(""), nil
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, fakeCall{sql: sql, args: args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var set [][]any
	if len(f.rows) > 0 {
		set, f.rows = f.rows[0], f.rows[1:]
	}
	return &fakeRows{values: set, idx: -1}, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.calls = append(f.calls, fakeCall{sql: sql, args: args})
	var err error
	if len(f.rowErrs) > 0 {
		err, f.rowErrs = f.rowErrs[0], f.rowErrs[1:]
	}
	var values []any
	if len(f.row) > 0 {
		values, f.row = f.row[0], f.row[1:]
	}
	if err != nil {
		return fakeRow{err: err}
	}
	if values == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: values}
}

func (f *fakeDB) lastCall() fakeCall {
	return f.calls[len(f.calls)-1]
}

func (f *fakeDB) callContaining(fragment string) (fakeCall, bool) {
	for _, c := range f.calls {
		if strings.Contains(c.sql, fragment) {
			return c, true
		}
	}
	return fakeCall{}, false
}

func currencyValues(m models.Currency) []any {
	return []any{m.MonedaID, m.CodigoISO, m.Nombre, m.Simbolo, m.Decimales, m.Activo}
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("fake: %d values for %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = values[i].(int64)
		case *int:
			*p = values[i].(int)
		case *string:
			*p = values[i].(string)
		case *bool:
			*p = values[i].(bool)
		default:
			return fmt.Errorf("fake: unsupported destination %T", d)
		}
	}
	return nil
}

type fakeRows struct {
	values [][]any
	idx    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }

func (r *fakeRows) Next() bool {
	if r.closed {
		return false
	}
	r.idx++
	if r.idx >= len(r.values) {
		r.closed = true
		return false
	}
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.values[r.idx], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.values[r.idx], nil
}
