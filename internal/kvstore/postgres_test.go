package kvstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub/internal/sqlinline"
)

func TestPostgresInsertReportsDuplicate(t *testing.T) {
	ctx := context.Background()
	sql := &fakeSQL{execTag: pgconn.NewCommandTag("INSERT 0 1")}
	store := NewPostgres(sql)

	require.NoError(t, store.Insert(ctx, 0, "a", []byte(`{}`)))
	require.Equal(t, sqlinline.QInsertRecord, sql.lastQuery)
	require.Equal(t, []any{0, "a", "{}"}, sql.lastArgs)

	// Conflict-do-nothing reports zero affected rows.
	sql.execTag = pgconn.NewCommandTag("INSERT 0 0")
	err := store.Insert(ctx, 0, "a", []byte(`{}`))
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestPostgresGetTranslatesNoRows(t *testing.T) {
	ctx := context.Background()
	sql := &fakeSQL{rowErr: pgx.ErrNoRows}
	store := NewPostgres(sql)

	_, err := store.Get(ctx, 1, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	sql.rowErr = nil
	sql.rowValue = []byte(`{"id":"r1"}`)
	value, err := store.Get(ctx, 1, "r1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"r1"}`), value)
	assert.Equal(t, []any{1, "r1"}, sql.lastArgs)
}

func TestPostgresListScansAllRows(t *testing.T) {
	ctx := context.Background()
	sql := &fakeSQL{listValues: [][]byte{[]byte("one"), []byte("two")}}
	store := NewPostgres(sql)

	values, err := store.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "one", string(values[0]))
	assert.Equal(t, "two", string(values[1]))
	assert.Equal(t, sqlinline.QListRecords, sql.lastQuery)
}

type fakeSQL struct {
	execTag    pgconn.CommandTag
	execErr    error
	rowValue   []byte
	rowErr     error
	listValues [][]byte

	lastQuery string
	lastArgs  []any
}

func (f *fakeSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.lastQuery, f.lastArgs = query, args
	return f.execTag, f.execErr
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.lastQuery, f.lastArgs = query, args
	return &fakeRow{value: f.rowValue, err: f.rowErr}
}

func (f *fakeSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.lastQuery, f.lastArgs = query, args
	return &fakeRows{values: f.listValues}, nil
}

type fakeRow struct {
	value []byte
	err   error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != 1 {
		return fmt.Errorf("unexpected scan args: %d", len(dest))
	}
	if v, ok := dest[0].(*[]byte); ok {
		*v = append([]byte(nil), r.value...)
	}
	return nil
}

type fakeRows struct {
	values [][]byte
	idx    int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.values) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.values) {
		return pgx.ErrNoRows
	}
	if len(dest) != 1 {
		return fmt.Errorf("unexpected scan args: %d", len(dest))
	}
	if v, ok := dest[0].(*[]byte); ok {
		*v = append([]byte(nil), r.values[r.idx-1]...)
	}
	return nil
}

func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) Close()                                       {}
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
