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

// WorkoutHandler holds dependencies for live workout session handlers.
type WorkoutHandler struct {
	uc usecase.WorkoutUsecase
}

// NewWorkoutHandler is the constructor for WorkoutHandler, injected by Fx.
func NewWorkoutHandler(uc usecase.WorkoutUsecase) *WorkoutHandler {
	return &WorkoutHandler{uc: uc}
}

type startWorkoutRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Start opens a new live workout session.
func (h *WorkoutHandler) Start(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req startWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid workout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	workout, err := h.uc.StartWorkout(c.Request().Context(), userID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, workout)
}

type logSetRequest struct {
	ExerciseName string  `json:"exercise_name" validate:"required,max=100"`
	SetNumber    int     `json:"set_number" validate:"required,min=1"`
	WeightKg     float64 `json:"weight_kg" validate:"min=0"`
	Reps         int     `json:"reps" validate:"required,min=1"`
}

// LogSet records one completed set on an in-progress workout.
func (h *WorkoutHandler) LogSet(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid workout ID")
	}

	var req logSetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid set input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	set, err := h.uc.LogSet(c.Request().Context(), userID, workoutID, &usecase.LogSetInput{
		ExerciseName: req.ExerciseName,
		SetNumber:    req.SetNumber,
		WeightKg:     req.WeightKg,
		Reps:         req.Reps,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, set)
}

// Complete finishes a workout session.
func (h *WorkoutHandler) Complete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid workout ID")
	}

	workout, err := h.uc.CompleteWorkout(c.Request().Context(), userID, workoutID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workout)
}

type cheerRequest struct {
	Message string `json:"message" validate:"required,max=200"`
}

// Cheer delivers a cheer message to the workout owner.
func (h *WorkoutHandler) Cheer(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid workout ID")
	}

	var req cheerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cheer input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SendCheer(c.Request().Context(), userID, workoutID, req.Message); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cheer sent"})
}

type workoutDetailResponse struct {
	Workout any `json:"workout"`
	Sets    any `json:"sets"`
}

// Get returns one workout with its sets.
func (h *WorkoutHandler) Get(c echo.Context) error {
	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid workout ID")
	}

	workout, sets, err := h.uc.GetWorkout(c.Request().Context(), workoutID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workoutDetailResponse{Workout: workout, Sets: sets})
}

// List returns a user's workout history.
func (h *WorkoutHandler) List(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid user ID")
	}

	limit, offset := pagination(c)
	workouts, err := h.uc.ListWorkouts(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workouts)
}
