package store

import (
	"context"
	"errors"

	"salesdesk/internal/platform/store/ch"
)

// newCHAdapter is called by openers.go to wrap an existing *ch.CH
// and return the store.Clickhouse seam (single return value)
func newCHAdapter(c *ch.CH) Clickhouse {
	return &clickhouseAdapter{inner: c}
}

// chClient is the surface the adapter needs from the ch package
// *ch.CH satisfies it; tests substitute fakes
type chClient interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Query(ctx context.Context, sql string, args ...any) (ch.Rows, error)
	Close() error
}

// clickhouseAdapter adapts the ch client to the store.Clickhouse interface
type clickhouseAdapter struct {
	inner chClient
}

var _ Clickhouse = (*clickhouseAdapter)(nil)

func (a *clickhouseAdapter) Insert(ctx context.Context, table string, data any) error {
	rows, ok := data.([][]any)
	if !ok {
		return errors.New("store: unsupported CH insert shape (want [][]any)")
	}
	return a.inner.Insert(ctx, table, rows)
}

func (a *clickhouseAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.inner.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &rowsAdapter{r: r}, nil
}

func (a *clickhouseAdapter) Close() error { return a.inner.Close() }

// rowsAdapter wraps ch.Rows as store.Rows
type rowsAdapter struct {
	r ch.Rows
}

func (r *rowsAdapter) Next() bool             { return r.r.Next() }
func (r *rowsAdapter) Scan(dest ...any) error { return r.r.Scan(dest...) }
func (r *rowsAdapter) Err() error             { return r.r.Err() }
func (r *rowsAdapter) Close()                 { _ = r.r.Close() }
func (r *rowsAdapter) Columns() []string      { return r.r.Columns() }

// Ping verifies connectivity with ClickHouse
// The return is named so the deferred close merge survives into the result
func (a *clickhouseAdapter) Ping(ctx context.Context) (err error) {
	if a == nil || a.inner == nil {
		return errors.New("store: nil clickhouse adapter")
	}

	// SELECT 1 in CH is UInt8
	rows, err := a.inner.Query(ctx, "SELECT toInt32(1)")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	if !rows.Next() {
		return errors.New("store: ch ping returned no rows")
	}

	var one int32
	if scanErr := rows.Scan(&one); scanErr != nil {
		return scanErr
	}
	return rows.Err()
}
