package store

import (
	"context"
	"sync"

	"github.com/aitprint-portal/AITPRINT/internal/ledger"
)

type memoryStore struct {
	mu     sync.RWMutex
	doc    ledger.Document
	loaded bool
}

// NewMemoryStore builds a volatile store for tests and development.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Load(_ context.Context) (ledger.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return ledger.Document{}, ErrNoDocument
	}
	return s.doc.Clone(), nil
}

func (s *memoryStore) Save(_ context.Context, doc ledger.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	s.loaded = true
	return nil
}
