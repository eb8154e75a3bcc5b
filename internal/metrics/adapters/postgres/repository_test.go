package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	recpg "generator-stats-service/internal/records/adapters/postgres"
)

var columnNames = strings.Split(recpg.RecordColumns, ", ")

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

// fakeRow holds column values by name; absent columns scan as NULL.
type fakeRow struct {
	values map[string]any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(columnNames) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		v := row.values[columnNames[i]]
		switch d := dest[i].(type) {
		case sql.Scanner:
			if err := d.Scan(v); err != nil {
				return err
			}
		case *string:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("type assertion to string failed for %s", columnNames[i])
			}
			*d = s
		case *time.Time:
			t, ok := v.(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = t
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn  func(ctx context.Context, query string, args ...any) (RowScanner, error)
	queries  []string
	lastArgs []any
	calls    int
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.calls++
	f.queries = append(f.queries, query)
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func row(id string, at time.Time, extra map[string]any) fakeRow {
	values := map[string]any{
		"id":               id,
		"created_at":       at,
		"jhipster_version": "7.9.3",
	}
	for k, v := range extra {
		values[k] = v
	}
	return fakeRow{values: values}
}

var base = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// ------------------------------------------------------------
// SINGLE PAGE
// ------------------------------------------------------------

func TestRecordReader_SinglePage(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "WHERE created_at > $1") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeRowScanner{
				rows: []fakeRow{
					row("a", base.Add(time.Hour), map[string]any{"database_type": "sql", "use_sass": true}),
					row("b", base.Add(2*time.Hour), map[string]any{"server_port": int64(8080)}),
				},
			}, nil
		},
	}

	reader := NewRecordReader(db, 10)

	out, err := reader.FindCreatedAfter(context.Background(), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.calls != 1 {
		t.Fatalf("expected 1 query, got %d", db.calls)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].DatabaseType != "sql" || out[0].UseSass == nil || !*out[0].UseSass {
		t.Fatalf("unexpected first record: %+v", out[0])
	}
	if out[1].ServerPort == nil || *out[1].ServerPort != 8080 {
		t.Fatalf("unexpected server port: %+v", out[1].ServerPort)
	}
	if out[1].DatabaseType != "" || out[1].UseSass != nil {
		t.Fatalf("expected NULL columns to stay missing: %+v", out[1])
	}
	if got := db.lastArgs[0].(time.Time); !got.Equal(base) {
		t.Fatalf("expected after=%s, got %s", base, got)
	}
	if db.lastArgs[1] != 10 {
		t.Fatalf("expected limit 10, got %v", db.lastArgs[1])
	}
}

// ------------------------------------------------------------
// KEYSET PAGING
// ------------------------------------------------------------

func TestRecordReader_Pages(t *testing.T) {
	pages := [][]fakeRow{
		{row("a", base.Add(1*time.Hour), nil), row("b", base.Add(2*time.Hour), nil)},
		{row("c", base.Add(2*time.Hour), nil), row("d", base.Add(3*time.Hour), nil)},
		{row("e", base.Add(4*time.Hour), nil)},
	}

	db := &fakeDB{}
	db.QueryFn = func(ctx context.Context, query string, args ...any) (RowScanner, error) {
		i := db.calls - 1
		if i > 0 {
			if !strings.Contains(query, "(created_at, id) > ($1, $2)") {
				t.Fatalf("expected keyset query, got: %s", query)
			}
			prev := pages[i-1][len(pages[i-1])-1].values
			if args[1] != prev["id"] {
				t.Fatalf("expected cursor id %v, got %v", prev["id"], args[1])
			}
		}
		return &fakeRowScanner{rows: pages[i]}, nil
	}

	reader := NewRecordReader(db, 2)

	out, err := reader.FindCreatedAfter(context.Background(), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.calls != 3 {
		t.Fatalf("expected 3 queries, got %d", db.calls)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 records, got %d", len(out))
	}
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		if out[i].ID != id {
			t.Fatalf("record %d: expected %s, got %s", i, id, out[i].ID)
		}
	}
}

func TestRecordReader_ExactMultipleIssuesEmptyTrailingPage(t *testing.T) {
	db := &fakeDB{}
	db.QueryFn = func(ctx context.Context, query string, args ...any) (RowScanner, error) {
		if db.calls == 1 {
			return &fakeRowScanner{rows: []fakeRow{row("a", base.Add(time.Minute), nil)}}, nil
		}
		return &fakeRowScanner{}, nil
	}

	out, err := NewRecordReader(db, 1).FindCreatedAfter(context.Background(), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || db.calls != 2 {
		t.Fatalf("expected 1 record over 2 queries, got %d over %d", len(out), db.calls)
	}
}

// ------------------------------------------------------------
// EMPTY / ERRORS
// ------------------------------------------------------------

func TestRecordReader_Empty(t *testing.T) {
	out, err := NewRecordReader(&fakeDB{}, 0).FindCreatedAfter(context.Background(), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestRecordReader_QueryError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db error")
		},
	}

	if _, err := NewRecordReader(db, 10).FindCreatedAfter(context.Background(), base); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestRecordReader_RowsError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: errors.New("iteration failed")}, nil
		},
	}

	if _, err := NewRecordReader(db, 10).FindCreatedAfter(context.Background(), base); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestRecordReader_ContextCancelledBetweenPages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	db := &fakeDB{
		QueryFn: func(_ context.Context, query string, args ...any) (RowScanner, error) {
			cancel()
			return &fakeRowScanner{rows: []fakeRow{row("a", base.Add(time.Minute), nil)}}, nil
		},
	}

	_, err := NewRecordReader(db, 1).FindCreatedAfter(ctx, base)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if db.calls != 1 {
		t.Fatalf("expected no further queries after cancel, got %d", db.calls)
	}
}
