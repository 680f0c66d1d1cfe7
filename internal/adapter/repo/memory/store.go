package memory

import (
	"sync"

	"chronoclicker/internal/domain/clicker"
)

// Store backs the repos when no database is configured. Tests use it too.
type Store struct {
	mu     sync.RWMutex
	saves  map[string][]byte
	events []clicker.Event
}

func NewStore() *Store {
	return &Store{saves: make(map[string][]byte)}
}
