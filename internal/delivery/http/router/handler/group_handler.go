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

// GroupHandler holds dependencies for workout group handlers.
type GroupHandler struct {
	uc usecase.GroupUsecase
}

// NewGroupHandler is the constructor for GroupHandler, injected by Fx.
func NewGroupHandler(uc usecase.GroupUsecase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

type createGroupRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// Create creates a group with the caller as owner.
func (h *GroupHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req createGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid group input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	group, err := h.uc.CreateGroup(c.Request().Context(), userID, &usecase.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, group)
}

// Get returns one group.
func (h *GroupHandler) Get(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid group ID")
	}

	group, err := h.uc.GetGroup(c.Request().Context(), groupID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, group)
}

// Join adds the caller as a member.
func (h *GroupHandler) Join(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid group ID")
	}

	if err := h.uc.JoinGroup(c.Request().Context(), userID, groupID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Joined group"})
}

type joinByInviteRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// JoinByInvite joins the group encoded in an invite QR payload.
func (h *GroupHandler) JoinByInvite(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req joinByInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid invite input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	group, err := h.uc.JoinGroupByInvite(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, group)
}

// InviteQR returns a PNG QR code inviting into the group.
func (h *GroupHandler) InviteQR(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid group ID")
	}

	png, err := h.uc.GenerateInviteQR(c.Request().Context(), userID, groupID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListMembers returns the group's members.
func (h *GroupHandler) ListMembers(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid group ID")
	}

	limit, offset := pagination(c)
	members, err := h.uc.ListMembers(c.Request().Context(), groupID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, members)
}

// ListFeeds returns posts shared into the group. Members only.
func (h *GroupHandler) ListFeeds(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid group ID")
	}

	limit, offset := pagination(c)
	feeds, err := h.uc.ListGroupFeeds(c.Request().Context(), userID, groupID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feeds)
}

// ListMine returns the groups the caller belongs to.
func (h *GroupHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	groups, err := h.uc.ListMyGroups(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groups)
}
