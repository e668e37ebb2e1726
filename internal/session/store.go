package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a token has no record in the store.
var ErrNotFound = errors.New("session not found")

// Store maps opaque session tokens to server-side records.
type Store interface {
	Get(ctx context.Context, token string) (Record, error)
	Set(ctx context.Context, token string, record Record, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}
