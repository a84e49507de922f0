// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sharefit/internal/delivery/http/middleware"
	"sharefit/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	WorkoutHandler *handler.WorkoutHandler
	FeedHandler    *handler.FeedHandler
	GroupHandler   *handler.GroupHandler
	FileHandler    *handler.FileHandler
	StreamHandler  *handler.StreamHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.POST("/logout", r.params.AuthHandler.Logout, auth.Authenticate)
	}

	userGroup := e.Group("/users", auth.Authenticate)
	{
		userGroup.GET("/me", r.params.UserHandler.GetMyProfile)
		userGroup.PUT("/me", r.params.UserHandler.UpdateProfile)
		userGroup.PUT("/me/push-token", r.params.UserHandler.RegisterPushToken)
		userGroup.GET("/:id", r.params.UserHandler.GetProfile)
		userGroup.POST("/:id/follow", r.params.UserHandler.Follow)
		userGroup.DELETE("/:id/follow", r.params.UserHandler.Unfollow)
		userGroup.GET("/:id/followers", r.params.UserHandler.ListFollowers)
		userGroup.GET("/:id/following", r.params.UserHandler.ListFollowing)
		userGroup.GET("/:id/workouts", r.params.WorkoutHandler.List)
	}

	workoutGroup := e.Group("/workouts", auth.Authenticate)
	{
		workoutGroup.POST("", r.params.WorkoutHandler.Start)
		workoutGroup.GET("/:id", r.params.WorkoutHandler.Get)
		workoutGroup.POST("/:id/sets", r.params.WorkoutHandler.LogSet)
		workoutGroup.POST("/:id/complete", r.params.WorkoutHandler.Complete)
		workoutGroup.POST("/:id/cheer", r.params.WorkoutHandler.Cheer)
	}

	feedGroup := e.Group("/feeds", auth.Authenticate)
	{
		feedGroup.POST("", r.params.FeedHandler.Create)
		feedGroup.GET("", r.params.FeedHandler.List)
		feedGroup.GET("/:id", r.params.FeedHandler.Get)
		feedGroup.POST("/:id/like", r.params.FeedHandler.Like)
		feedGroup.DELETE("/:id/like", r.params.FeedHandler.Unlike)
		feedGroup.POST("/:id/comments", r.params.FeedHandler.Comment)
		feedGroup.GET("/:id/comments", r.params.FeedHandler.ListComments)
	}

	groupGroup := e.Group("/groups", auth.Authenticate)
	{
		groupGroup.POST("", r.params.GroupHandler.Create)
		groupGroup.GET("/mine", r.params.GroupHandler.ListMine)
		groupGroup.GET("/:id", r.params.GroupHandler.Get)
		groupGroup.POST("/:id/join", r.params.GroupHandler.Join)
		groupGroup.POST("/join-by-invite", r.params.GroupHandler.JoinByInvite)
		groupGroup.GET("/:id/invite-qr", r.params.GroupHandler.InviteQR)
		groupGroup.GET("/:id/members", r.params.GroupHandler.ListMembers)
		groupGroup.GET("/:id/feeds", r.params.GroupHandler.ListFeeds)
	}

	fileGroup := e.Group("/files", auth.Authenticate)
	{
		fileGroup.POST("/images", r.params.FileHandler.UploadImage)
	}

	// SSE endpoints authenticate inside the handler: EventSource clients
	// can only pass the token as a query parameter.
	streamGroup := e.Group("/stream")
	{
		streamGroup.GET("", r.params.StreamHandler.StreamUser)
		streamGroup.GET("/feed", r.params.StreamHandler.StreamFeed)
		streamGroup.GET("/workouts/:id", r.params.StreamHandler.StreamWorkout)
		streamGroup.GET("/groups/:id", r.params.StreamHandler.StreamGroup)
	}
}
