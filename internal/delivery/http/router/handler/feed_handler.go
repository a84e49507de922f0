package handler

import (
	"net/http"

	"sharefit/internal/delivery/http/middleware"
	"sharefit/internal/delivery/http/response"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedHandler holds dependencies for social feed handlers.
type FeedHandler struct {
	uc usecase.FeedUsecase
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(uc usecase.FeedUsecase) *FeedHandler {
	return &FeedHandler{uc: uc}
}

type createFeedRequest struct {
	Content   string     `json:"content" validate:"required,max=2000"`
	ImageURL  string     `json:"image_url" validate:"omitempty,url"`
	WorkoutID *uuid.UUID `json:"workout_id"`
	GroupID   *uuid.UUID `json:"group_id"`
}

// Create publishes a post, optionally shared into a group.
func (h *FeedHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req createFeedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid feed input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	feed, err := h.uc.CreateFeed(c.Request().Context(), userID, &usecase.CreateFeedInput{
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		WorkoutID: req.WorkoutID,
		GroupID:   req.GroupID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, feed)
}

// Get returns one post.
func (h *FeedHandler) Get(c echo.Context) error {
	feedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid feed ID")
	}

	feed, err := h.uc.GetFeed(c.Request().Context(), feedID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feed)
}

// List returns the public timeline.
func (h *FeedHandler) List(c echo.Context) error {
	limit, offset := pagination(c)
	feeds, err := h.uc.ListFeeds(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feeds)
}

// Like adds the caller's like to a post.
func (h *FeedHandler) Like(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	feedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid feed ID")
	}

	if err := h.uc.LikeFeed(c.Request().Context(), userID, feedID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Liked"})
}

// Unlike removes the caller's like.
func (h *FeedHandler) Unlike(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	feedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid feed ID")
	}

	if err := h.uc.UnlikeFeed(c.Request().Context(), userID, feedID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unliked"})
}

type createCommentRequest struct {
	Content  string     `json:"content" validate:"required,max=1000"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// Comment adds a comment or reply to a post.
func (h *FeedHandler) Comment(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	feedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid feed ID")
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.uc.CommentFeed(c.Request().Context(), userID, feedID, &usecase.CreateCommentInput{
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment)
}

// ListComments returns a post's comments.
func (h *FeedHandler) ListComments(c echo.Context) error {
	feedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid feed ID")
	}

	limit, offset := pagination(c)
	comments, err := h.uc.ListComments(c.Request().Context(), feedID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments)
}
