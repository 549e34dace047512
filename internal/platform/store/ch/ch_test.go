package ch

import (
	"context"
	"strings"
	"testing"
)

// TestOpen_BadDSN rejects DSNs the native driver cannot parse
func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "://not-a-dsn"})
	if err == nil {
		t.Fatalf("Open expected error for bad DSN, got nil")
	}
	if !strings.Contains(err.Error(), "parse dsn") {
		t.Fatalf("Open error = %q, want parse dsn wrap", err)
	}
}

// TestInsert_EmptyRows is a no op and must not touch the connection
func TestInsert_EmptyRows(t *testing.T) {
	t.Parallel()

	cl := &CH{}
	if err := cl.Insert(context.Background(), "t", nil); err != nil {
		t.Fatalf("Insert with no rows returned error: %v", err)
	}
}

// TestSanitizeIdent strips everything but word characters and dots
func TestSanitizeIdent(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"events", "events"},
		{"db.wa_campaign_events", "db.wa_campaign_events"},
		{"evil; drop table x", "evildroptablex"},
		{"a-b c", "abc"},
	}
	for _, tc := range cases {
		if got := sanitizeIdent(tc.in); got != tc.want {
			t.Fatalf("sanitizeIdent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestBuildClientInfo trims and labels each product entry
func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo(" api ", " v1 ")
	if len(ci.Products) == 0 {
		t.Fatalf("BuildClientInfo returned no products")
	}
	if ci.Products[0].Name != "salesdesk" || ci.Products[0].Version != "v1" {
		t.Fatalf("product[0] = %+v, want salesdesk/v1", ci.Products[0])
	}
	if ci.Products[1].Name != "role" || ci.Products[1].Version != "api" {
		t.Fatalf("product[1] = %+v, want role/api", ci.Products[1])
	}
}
