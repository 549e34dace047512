package net_test

import (
	"context"
	"testing"

	pnet "salesdesk/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets both ids", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123", "auditor")

		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		if got := pnet.Role(ctx); got != "auditor" {
			t.Fatalf("Role got %q want %q", got, "auditor")
		}
	})

	t.Run("sets only request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "r-only", "")

		if got := pnet.RequestID(ctx); got != "r-only" {
			t.Fatalf("RequestID got %q want %q", got, "r-only")
		}
		if got := pnet.Role(ctx); got != "" {
			t.Fatalf("Role got %q want empty", got)
		}
	})

	t.Run("sets only role", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "", "role-only")

		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
		if got := pnet.Role(ctx); got != "role-only" {
			t.Fatalf("Role got %q want %q", got, "role-only")
		}
	})

	t.Run("no ids returns same ctx and empty getters", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "", "")

		// should be the same reference since nothing was set
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when both ids empty")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
		if got := pnet.Role(ctx); got != "" {
			t.Fatalf("Role got %q want empty", got)
		}
	})
}
