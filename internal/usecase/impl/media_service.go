package impl

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	domainerrors "sharefit/internal/domain/errors"
	"sharefit/internal/domain/service"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
)

type mediaService struct {
	storage service.MediaStorage
}

// NewMediaService creates a new media service instance
func NewMediaService(storage service.MediaStorage) usecase.MediaUsecase {
	return &mediaService{storage: storage}
}

// UploadImage stores an uploaded image under a collision-free key and
// returns its public URL. The original filename only contributes its
// extension.
func (s *mediaService) UploadImage(ctx context.Context, userID uuid.UUID, filename, contentType string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := "uploads/" + userID.String() + "/" + uuid.NewString() + ext

	url, err := s.storage.Upload(ctx, key, contentType, content)
	if err != nil {
		return "", domainerrors.ErrUploadFailed.WrapCause(err, "failed to upload image")
	}

	return url, nil
}
