package course

import (
	"context"
	"sync"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
)

type MemStore struct {
	lock sync.RWMutex
	docs map[string]Document
}

func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]Document)}
}

func (s *MemStore) Fetch(_ context.Context, code string) (*Document, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	doc, ok := s.docs[code]
	if !ok {
		return nil, apperr.NewConfigNotFound(code)
	}
	return &Document{Format: doc.Format, Data: append([]byte(nil), doc.Data...)}, nil
}

func (s *MemStore) Save(_ context.Context, code string, doc Document) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.docs[code] = Document{Format: doc.Format, Data: append([]byte(nil), doc.Data...)}
	return nil
}

func (s *MemStore) Ping(_ context.Context) error {
	return nil
}
