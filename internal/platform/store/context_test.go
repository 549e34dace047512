package store

import (
	"context"
	"testing"
)

// TestRole_SetAndGet sets a role and retrieves it
func TestRole_SetAndGet(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctx := WithRole(base, "auditor")

	id, ok := Role(ctx)
	if !ok {
		t.Fatalf("Role not found")
	}
	if id != "auditor" {
		t.Fatalf("Role mismatch got=%q want=%q", id, "auditor")
	}
}

// TestRole_EmptyString reports false when empty string is stored
func TestRole_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithRole(context.Background(), "")

	id, ok := Role(ctx)
	if ok {
		t.Fatalf("Role ok should be false for empty value")
	}
	if id != "" {
		t.Fatalf("Role should be empty got=%q", id)
	}
}

// TestRole_NotPresent returns false on base context
func TestRole_NotPresent(t *testing.T) {
	t.Parallel()

	id, ok := Role(context.Background())
	if ok || id != "" {
		t.Fatalf("Role should be absent on base context")
	}
}

// TestRole_NoLeak ensures adding value returns a new ctx and base has no value
func TestRole_NoLeak(t *testing.T) {
	t.Parallel()

	base := context.Background()
	_ = WithRole(base, "auditor")

	id, ok := Role(base)
	if ok || id != "" {
		t.Fatalf("base context should not have role value")
	}
}

// TestRequestID_SetAndGet sets a request id and retrieves it
func TestRequestID_SetAndGet(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctx := WithRequestID(base, "req-123")

	id, ok := RequestID(ctx)
	if !ok {
		t.Fatalf("RequestID not found")
	}
	if id != "req-123" {
		t.Fatalf("RequestID mismatch got=%q want=%q", id, "req-123")
	}
}

// TestRequestID_EmptyString reports false when empty string is stored
func TestRequestID_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "")

	id, ok := RequestID(ctx)
	if ok {
		t.Fatalf("RequestID ok should be false for empty value")
	}
	if id != "" {
		t.Fatalf("RequestID should be empty got=%q", id)
	}
}

// TestRequestID_NotPresent returns false on base context
func TestRequestID_NotPresent(t *testing.T) {
	t.Parallel()

	id, ok := RequestID(context.Background())
	if ok || id != "" {
		t.Fatalf("RequestID should be absent on base context")
	}
}

// TestKeys_Isolation ensures role and request keys do not collide
func TestKeys_Isolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx = WithRole(ctx, "auditor")
	ctx = WithRequestID(ctx, "req-123")

	role, ok := Role(ctx)
	req, rok := RequestID(ctx)

	if !ok || role != "auditor" {
		t.Fatalf("Role mismatch ok=%v role=%q", ok, role)
	}
	if !rok || req != "req-123" {
		t.Fatalf("RequestID mismatch rok=%v req=%q", rok, req)
	}
}
