package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"voltgate/internal/domain"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	if err := store.Put(ctx, domain.ScopeStaff, "tok", "u1", time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}
	subject, err := store.Get(ctx, domain.ScopeStaff, "tok")
	if err != nil || subject != "u1" {
		t.Fatalf("get: %q %v", subject, err)
	}

	if err := store.Delete(ctx, domain.ScopeStaff, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, domain.ScopeStaff, "tok"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("deleted token should be not found, got %v", err)
	}
	// Deleting again is fine.
	if err := store.Delete(ctx, domain.ScopeStaff, "tok"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestMemoryStore_ScopesAreDisjoint(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	if err := store.Put(ctx, domain.ScopeDriver, "tok", "e1", time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := store.Get(ctx, domain.ScopeStaff, "tok"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("driver token visible in staff scope: %v", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	current := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	store := NewMemoryStore(func() time.Time { return current })
	ctx := context.Background()

	if err := store.Put(ctx, domain.ScopeDriver, "tok", "e1", time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := store.Get(ctx, domain.ScopeDriver, "tok"); err != nil {
		t.Fatalf("get before expiry: %v", err)
	}

	current = current.Add(2 * time.Minute)
	if _, err := store.Get(ctx, domain.ScopeDriver, "tok"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expired token should be not found, got %v", err)
	}
}
