package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"sharefit/config"
	"sharefit/internal/delivery/http/middleware"
	"sharefit/internal/delivery/http/response"
	"sharefit/internal/domain/service"
	"sharefit/internal/realtime"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sseWriter adapts an echo response to the registry's frame writer. Writes
// happen from dispatcher goroutines; echo's ResponseWriter is safe here
// because the registry serializes writes per connection.
type sseWriter struct {
	res *echo.Response
}

func (w *sseWriter) WriteEvent(event string, data []byte) error {
	if _, err := fmt.Fprintf(w.res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	w.res.Flush()

	return nil
}

// StreamHandler serves the SSE endpoints backed by the connection registry.
type StreamHandler struct {
	registry         *realtime.Registry
	groupUC          usecase.GroupUsecase
	authMiddleware   *middleware.AuthMiddleware
	logger           *slog.Logger
	maxConnectionAge time.Duration
}

// NewStreamHandler is the constructor for StreamHandler, injected by Fx.
func NewStreamHandler(
	registry *realtime.Registry,
	groupUC usecase.GroupUsecase,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
	logger *slog.Logger,
) *StreamHandler {
	maxAge := realtime.MaxConnectionAge
	if cfg.Stream != nil && cfg.Stream.MaxConnectionAge > 0 {
		maxAge = cfg.Stream.MaxConnectionAge
	}

	return &StreamHandler{
		registry:         registry,
		groupUC:          groupUC,
		authMiddleware:   authMiddleware,
		logger:           logger,
		maxConnectionAge: maxAge,
	}
}

// StreamUser opens the caller's personal notification stream.
func (h *StreamHandler) StreamUser(c echo.Context) error {
	userID, err := h.authenticate(c)
	if err != nil {
		return response.Unauthorized(c, "Invalid or expired token")
	}

	return h.serve(c, userID, service.UserScope(userID))
}

// StreamWorkout opens a live view on one workout session.
func (h *StreamHandler) StreamWorkout(c echo.Context) error {
	userID, err := h.authenticate(c)
	if err != nil {
		return response.Unauthorized(c, "Invalid or expired token")
	}

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid workout ID")
	}

	return h.serve(c, userID, service.ResourceScope(service.ResourceWorkout, workoutID))
}

// StreamGroup opens a group's live channel. Members only.
func (h *StreamHandler) StreamGroup(c echo.Context) error {
	userID, err := h.authenticate(c)
	if err != nil {
		return response.Unauthorized(c, "Invalid or expired token")
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid group ID")
	}

	// Membership gate reuses the group use case guard.
	if _, err := h.groupUC.ListGroupFeeds(c.Request().Context(), userID, groupID, 1, 0); err != nil {
		return err
	}

	return h.serve(c, userID, service.ResourceScope(service.ResourceGroup, groupID))
}

// StreamFeed opens the public timeline broadcast stream.
func (h *StreamHandler) StreamFeed(c echo.Context) error {
	userID, err := h.authenticate(c)
	if err != nil {
		return response.Unauthorized(c, "Invalid or expired token")
	}

	return h.serve(c, userID, service.BroadcastScope("feed"))
}

// authenticate accepts the bearer header or a token query parameter, since
// the browser EventSource API cannot set request headers.
func (h *StreamHandler) authenticate(c echo.Context) (uuid.UUID, error) {
	if userID, ok := middleware.UserID(c); ok {
		return userID, nil
	}

	if token := c.QueryParam("token"); token != "" {
		return h.authMiddleware.AuthenticateTokenString(token)
	}

	return uuid.Nil, echo.ErrUnauthorized
}

// serve registers the connection and blocks until the client disconnects or
// the connection age limit closes it. Clients are expected to reconnect.
func (h *StreamHandler) serve(c echo.Context, userID uuid.UUID, scope service.StreamScope) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	conn, err := h.registry.Open(userID, scope, &sseWriter{res: res})
	if err != nil {
		return err
	}

	h.logger.Debug("stream opened",
		slog.String("user_id", userID.String()),
		slog.String("scope", scope.Key()),
	)

	ageLimit := time.NewTimer(h.maxConnectionAge)
	defer ageLimit.Stop()

	select {
	case <-c.Request().Context().Done():
	case <-conn.Done():
	case <-ageLimit.C:
	}

	h.registry.Close(conn)
	h.logger.Debug("stream closed",
		slog.String("user_id", userID.String()),
		slog.String("scope", scope.Key()),
	)

	return nil
}
