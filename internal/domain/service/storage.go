package service

import (
	"context"
	"io"
)

// MediaStorage stores user-uploaded media (profile and feed images) in an
// object-storage bucket and returns publicly addressable URLs.
type MediaStorage interface {
	// Upload writes the content under the given key and returns its URL.
	Upload(ctx context.Context, key, contentType string, content io.Reader) (string, error)

	// Delete removes the object stored under the key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
