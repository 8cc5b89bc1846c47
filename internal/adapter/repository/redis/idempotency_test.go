package redis

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestIdempotencyCheckAndSetFirstCall(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, existing, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if exists {
		t.Fatalf("expected first call to claim the key")
	}
	if existing != nil {
		t.Fatalf("expected no existing value, got %q", existing)
	}
}

func TestIdempotencyCheckAndSetSecondCall(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute); err != nil {
		t.Fatalf("first check failed: %v", err)
	}

	response := []byte(`{"status_code":201}`)
	if err := store.Update(ctx, "key-1", response, time.Minute); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	exists, existing, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("second check failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected key to exist on replay")
	}
	if !bytes.Equal(existing, response) {
		t.Fatalf("expected stored response, got %q", existing)
	}
}

func TestIdempotencyCheckAndSetWithResponse(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	response := []byte("done")
	exists, _, err := store.CheckAndSet(ctx, "key-2", response, time.Minute)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if exists {
		t.Fatalf("expected fresh key")
	}

	exists, existing, err := store.CheckAndSet(ctx, "key-2", nil, time.Minute)
	if err != nil {
		t.Fatalf("replay check failed: %v", err)
	}
	if !exists || !bytes.Equal(existing, response) {
		t.Fatalf("expected stored response on replay, got exists=%v value=%q", exists, existing)
	}
}
