package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// MediaUsecase defines the interface for media upload use cases
type MediaUsecase interface {
	// UploadImage stores an uploaded image and returns its public URL.
	UploadImage(ctx context.Context, userID uuid.UUID, filename, contentType string, content io.Reader) (string, error)
}
