// Package blob defines the blob-storage collaborator. Only the returned
// URL is persisted by this core; storage mechanics live elsewhere.
package blob

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Uploader stores raw bytes for an owner and returns a public URL.
type Uploader interface {
	Upload(ctx context.Context, ownerID string, data []byte, contentType string) (string, error)
}

// localUploader is the development stand-in: it fabricates stable URLs
// without persisting anything.
type localUploader struct {
	baseURL string
}

// NewLocalUploader constructs the dev uploader. baseURL defaults to a
// local placeholder host when empty.
func NewLocalUploader(baseURL string) Uploader {
	if baseURL == "" {
		baseURL = "https://storage.localhost/blobs"
	}
	return &localUploader{baseURL: baseURL}
}

func (u *localUploader) Upload(ctx context.Context, ownerID string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty upload")
	}
	return fmt.Sprintf("%s/%s/%s", u.baseURL, ownerID, uuid.NewString()), nil
}
