// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutStatus is the lifecycle state of a workout session.
type WorkoutStatus string

const (
	// WorkoutStatusInProgress marks a workout that has been started but not finished.
	WorkoutStatusInProgress WorkoutStatus = "IN_PROGRESS"
	// WorkoutStatusCompleted marks a finished workout.
	WorkoutStatusCompleted WorkoutStatus = "COMPLETED"
)

// Workout represents a single training session logged by a user.
type Workout struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Name        string        `json:"name"`         // e.g. "Push day", "5x5 squats".
	Status      WorkoutStatus `json:"status"`       //
	TotalSets   int           `json:"total_sets"`   // Denormalized from the logged sets.
	TotalVolume float64       `json:"total_volume"` // Sum of weight*reps across sets, in kg.
	DurationMin int           `json:"duration_min"` // Minutes between start and completion.
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// WorkoutSet is one logged set within a workout.
type WorkoutSet struct {
	ID           uuid.UUID `json:"id"`
	WorkoutID    uuid.UUID `json:"workout_id"`
	ExerciseName string    `json:"exercise_name"`
	SetNumber    int       `json:"set_number"`
	WeightKg     float64   `json:"weight_kg"`
	Reps         int       `json:"reps"`
	CompletedAt  time.Time `json:"completed_at"`
}
