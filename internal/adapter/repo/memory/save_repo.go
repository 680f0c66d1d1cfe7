package memory

import (
	"context"

	"chronoclicker/internal/app/ports"
)

type SaveRepo struct {
	store *Store
}

func NewSaveRepo(store *Store) SaveRepo {
	return SaveRepo{store: store}
}

func (r SaveRepo) Put(_ context.Context, key string, payload []byte) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	buf := make([]byte, len(payload))
	copy(buf, payload)
	r.store.saves[key] = buf
	return nil
}

func (r SaveRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	payload, ok := r.store.saves[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	buf := make([]byte, len(payload))
	copy(buf, payload)
	return buf, nil
}

func (r SaveRepo) Delete(_ context.Context, key string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.saves, key)
	return nil
}
