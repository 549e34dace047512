// Package ch provides a clickhouse client
package ch

import (
	"context"
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures clickhouse client
type Config struct {
	URL string

	// reported through clickhouse client info so server logs show who we are
	ClientName string
	ClientTag  string
}

// Rows is the minimal result set iteration for ch
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() []string
}

// CH is the clickhouse connectivity seam
type CH struct {
	conn driver.Conn
}

// Open parses the DSN and opens a native clickhouse connection
func Open(_ context.Context, cfg Config) (*CH, error) {
	opts, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("ch: parse dsn: %w", err)
	}
	opts.ClientInfo = BuildClientInfo(cfg.ClientName, cfg.ClientTag)
	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("ch: open: %w", err)
	}
	return &CH{conn: conn}, nil
}

// Insert appends rows into table via a prepared batch
func (c *CH) Insert(ctx context.Context, table string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	batch, err := c.conn.PrepareBatch(ctx, "insert into "+sanitizeIdent(table))
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := batch.Append(r...); err != nil {
			return err
		}
	}
	return batch.Send()
}

// Query runs a query and returns ch.Rows
func (c *CH) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return c.conn.Query(ctx, sql, args...)
}

// Ping verifies connectivity
func (c *CH) Ping(ctx context.Context) error { return c.conn.Ping(ctx) }

// Close closes resources
func (c *CH) Close() error { return c.conn.Close() }

// sanitizeIdent keeps table names to word characters and dots
func sanitizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.':
			return r
		}
		return -1
	}, s)
}
