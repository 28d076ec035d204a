// Package search defines the journal search collaborator. The hosted
// search service is external; this core shapes queries and reduces
// results.
package search

import (
	"context"
	"time"
)

// Document is the indexed projection of a journal entry.
type Document struct {
	ID      string    `json:"id"`
	OwnerID string    `json:"ownerId"`
	Content string    `json:"content"`
	Tags    []string  `json:"tags"`
	Mood    string    `json:"mood,omitempty"`
	Date    time.Time `json:"date"`
}

// Service indexes documents and answers owner-scoped text queries.
type Service interface {
	Index(ctx context.Context, doc Document) error
	Remove(ctx context.Context, id string) error
	// Search returns matches for the owner ordered by date descending.
	Search(ctx context.Context, ownerID, query string, limit int) ([]Document, error)
}
