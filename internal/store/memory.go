package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store with in-memory collections. It backs tests and
// local runs without a configured database. Documents are deep-copied on
// insert via a JSON round-trip, so callers cannot mutate stored state.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
	}
}

// Insert stores a copy of doc and returns a generated UUID identifier
func (s *MemoryStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	copied, err := toDocument(doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	id := uuid.New().String()
	copied["id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], copied)

	return id, nil
}

// Query returns documents matching the equality filter in insertion order
func (s *MemoryStore) Query(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []Document
	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		results = append(results, doc)
		if limit > 0 && int64(len(results)) >= limit {
			break
		}
	}
	return results, nil
}

// Collections lists non-empty collection names
func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

// Ping always succeeds for the in-memory store
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// matches reports whether every filter field equals the document field
func matches(doc Document, filter Filter) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

// toDocument deep-copies an arbitrary value into a Document
func toDocument(doc interface{}) (Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = Document{}
	}
	return out, nil
}
