package search

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// InMemoryService is the development search backend: naive substring
// matching over content and tags.
type InMemoryService struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewInMemoryService constructs an empty index.
func NewInMemoryService() *InMemoryService {
	return &InMemoryService{docs: make(map[string]Document)}
}

func (s *InMemoryService) Index(ctx context.Context, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	return nil
}

func (s *InMemoryService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

func (s *InMemoryService) Search(ctx context.Context, ownerID, query string, limit int) ([]Document, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	results := make([]Document, 0)
	for _, doc := range s.docs {
		if doc.OwnerID != ownerID {
			continue
		}
		if normalized != "" && !matches(doc, normalized) {
			continue
		}
		results = append(results, doc)
	}
	s.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Date.After(results[j].Date)
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func matches(doc Document, query string) bool {
	if strings.Contains(strings.ToLower(doc.Content), query) {
		return true
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
