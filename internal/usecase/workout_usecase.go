package usecase

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
)

// LogSetInput carries one logged set.
type LogSetInput struct {
	ExerciseName string  `json:"exercise_name"`
	SetNumber    int     `json:"set_number"`
	WeightKg     float64 `json:"weight_kg"`
	Reps         int     `json:"reps"`
}

// WorkoutUsecase defines the interface for live workout session use cases
type WorkoutUsecase interface {
	// StartWorkout opens a new live workout session.
	StartWorkout(ctx context.Context, userID uuid.UUID, name string) (*entity.Workout, error)

	// LogSet records one completed set on an in-progress workout.
	LogSet(ctx context.Context, userID, workoutID uuid.UUID, input *LogSetInput) (*entity.WorkoutSet, error)

	// CompleteWorkout finishes a workout and freezes its totals.
	CompleteWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*entity.Workout, error)

	// SendCheer delivers a cheer message to the owner of an active workout.
	SendCheer(ctx context.Context, fromUserID, workoutID uuid.UUID, message string) error

	// GetWorkout returns one workout with its sets.
	GetWorkout(ctx context.Context, workoutID uuid.UUID) (*entity.Workout, []*entity.WorkoutSet, error)

	// ListWorkouts returns a user's workout history, newest first.
	ListWorkouts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Workout, error)
}
