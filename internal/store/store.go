// Package store wraps the document database behind per-entity containers.
// Services never know whether a request was served by MongoDB or by the
// in-memory development fallback.
package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a document is absent from its container.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable signals that neither the real store nor a fallback
	// could serve the request.
	ErrUnavailable = errors.New("document store unavailable")
)

// Container exposes the four primitives services are allowed to use
// against one entity-type collection.
type Container interface {
	// Create inserts a new document. The document must carry its own id.
	Create(ctx context.Context, doc interface{}) error
	// Query materializes every match into out, which must be a pointer
	// to a slice of the entity type.
	Query(ctx context.Context, q *Query, out interface{}) error
	// Count returns the number of matches, ignoring pagination.
	Count(ctx context.Context, q *Query) (int64, error)
	// Upsert replaces the document with the given id, inserting if absent.
	Upsert(ctx context.Context, id string, doc interface{}) error
	// Delete removes the document by id within its partition. Returns
	// ErrNotFound if no such document exists.
	Delete(ctx context.Context, id, partitionKey string) error
}

// Client hands out containers. Constructed once at startup and injected
// into every repository.
type Client interface {
	// Container returns the container for the named collection,
	// creating it on first use. Subsequent calls reuse the same handle.
	Container(name, partitionField string) Container
	// Backend identifies which implementation serves requests, for logging.
	Backend() string
}

// Connect builds the store client. When uri is empty or the server is
// unreachable, the in-memory fallback is substituted transparently —
// unless allowFallback is false, in which case ErrUnavailable is returned.
func Connect(ctx context.Context, uri, database string, allowFallback bool) (Client, error) {
	if uri != "" {
		client, err := NewMongoClient(ctx, uri, database)
		if err == nil {
			return client, nil
		}
		if !allowFallback {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	} else if !allowFallback {
		return nil, fmt.Errorf("%w: no connection string configured", ErrUnavailable)
	}
	return NewMemoryClient(), nil
}
