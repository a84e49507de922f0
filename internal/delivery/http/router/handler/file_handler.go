package handler

import (
	"net/http"

	"sharefit/internal/delivery/http/middleware"
	"sharefit/internal/delivery/http/response"
	"sharefit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FileHandler holds dependencies for media upload handlers.
type FileHandler struct {
	uc usecase.MediaUsecase
}

// NewFileHandler is the constructor for FileHandler, injected by Fx.
func NewFileHandler(uc usecase.MediaUsecase) *FileHandler {
	return &FileHandler{uc: uc}
}

// UploadImage stores a multipart image upload and returns its public URL.
func (h *FileHandler) UploadImage(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "Missing file field")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.BindingError(c, "Unreadable file upload")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.uc.UploadImage(c.Request().Context(), userID, fileHeader.Filename, contentType, src)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url})
}
