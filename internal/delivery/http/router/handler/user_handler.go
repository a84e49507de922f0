package handler

import (
	"net/http"
	"strconv"

	"sharefit/internal/delivery/http/middleware"
	"sharefit/internal/delivery/http/response"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile and social graph handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetMyProfile returns the caller's own profile.
func (h *UserHandler) GetMyProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// GetProfile returns another user's public profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid user ID")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

type updateProfileRequest struct {
	DisplayName     string `json:"display_name" validate:"required,max=50"`
	Bio             string `json:"bio" validate:"max=500"`
	ProfileImageURL string `json:"profile_image_url" validate:"omitempty,url"`
}

// UpdateProfile updates the caller's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		DisplayName:     req.DisplayName,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

type pushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// RegisterPushToken stores the caller's device push token.
func (h *UserHandler) RegisterPushToken(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req pushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid push token input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RegisterPushToken(c.Request().Context(), userID, req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Push token registered"})
}

// Follow makes the caller follow the target user.
func (h *UserHandler) Follow(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid user ID")
	}

	if err := h.uc.Follow(c.Request().Context(), userID, followeeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Now following"})
}

// Unfollow removes a follow edge.
func (h *UserHandler) Unfollow(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid user ID")
	}

	if err := h.uc.Unfollow(c.Request().Context(), userID, followeeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unfollowed"})
}

// ListFollowers returns the target user's followers.
func (h *UserHandler) ListFollowers(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid user ID")
	}

	limit, offset := pagination(c)
	users, err := h.uc.ListFollowers(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}

// ListFollowing returns the users the target user follows.
func (h *UserHandler) ListFollowing(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid user ID")
	}

	limit, offset := pagination(c)
	users, err := h.uc.ListFollowing(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}

// pagination parses limit/offset query parameters with sane bounds.
func pagination(c echo.Context) (limit, offset int) {
	limit = 20
	offset = 0

	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v >= 0 {
		offset = v
	}

	return limit, offset
}
