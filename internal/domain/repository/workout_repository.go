package repository

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrWorkoutNotFound is returned when a workout does not exist.
var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutRepository defines the interface for workout session persistence.
type WorkoutRepository interface {
	// CreateWorkout persists a newly started workout.
	CreateWorkout(ctx context.Context, workout *entity.Workout) error

	// FindWorkoutByID retrieves a workout by its unique ID.
	FindWorkoutByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error)

	// UpdateWorkout updates the workout's status and denormalized totals.
	UpdateWorkout(ctx context.Context, workout *entity.Workout) error

	// ListWorkoutsByUser returns a user's workouts, newest first.
	ListWorkoutsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Workout, error)

	// CreateSet persists one logged set.
	CreateSet(ctx context.Context, set *entity.WorkoutSet) error

	// ListSetsByWorkout returns all sets of a workout in logging order.
	ListSetsByWorkout(ctx context.Context, workoutID uuid.UUID) ([]*entity.WorkoutSet, error)
}
