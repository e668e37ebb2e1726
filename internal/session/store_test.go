package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "tok-1", Record{UserID: 42}, Lifetime); err != nil {
		t.Fatalf("failed to set session: %v", err)
	}

	record, err := store.Get(ctx, "tok-1")
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if record.UserID != 42 {
		t.Errorf("expected user id 42, got %d", record.UserID)
	}
}

func TestRedisStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-token")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "tok-2", Record{UserID: 7}, Lifetime); err != nil {
		t.Fatalf("failed to set session: %v", err)
	}
	if err := store.Delete(ctx, "tok-2"); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}

	if _, err := store.Get(ctx, "tok-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "tok-3", Record{UserID: 9}, time.Minute); err != nil {
		t.Fatalf("failed to set session: %v", err)
	}

	if ttl := mr.TTL(keyPrefix + "tok-3"); ttl <= 0 || ttl > time.Minute {
		t.Errorf("expected a TTL within one minute, got %v", ttl)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, "tok-3"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after expiry, got %v", err)
	}
}
