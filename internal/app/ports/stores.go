package ports

import (
	"context"

	"chronoclicker/internal/domain/clicker"
)

// SaveStore is a string-keyed document store for serialized snapshots.
type SaveStore interface {
	Put(ctx context.Context, key string, payload []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// EventStore is the append-only history log behind the replay endpoint.
type EventStore interface {
	Append(ctx context.Context, events []clicker.Event) error
	ListRecent(ctx context.Context, limit int) ([]clicker.Event, error)
}
