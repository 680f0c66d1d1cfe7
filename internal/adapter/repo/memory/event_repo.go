package memory

import (
	"context"

	"chronoclicker/internal/domain/clicker"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, events []clicker.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events = append(r.store.events, events...)
	return nil
}

// ListRecent returns events newest first, matching the database adapter.
func (r EventRepo) ListRecent(_ context.Context, limit int) ([]clicker.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	n := len(r.store.events)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]clicker.Event, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.store.events[i])
	}
	return out, nil
}
