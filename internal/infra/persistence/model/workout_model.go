package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutModel mirrors the 'workouts' table. Status is one of IN_PROGRESS or COMPLETED.
type WorkoutModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'IN_PROGRESS'"`
	TotalSets   int       `gorm:"not null;default:0"`
	TotalVolume float64   `gorm:"not null;default:0"`
	DurationMin int       `gorm:"not null;default:0"`
	StartedAt   time.Time `gorm:"not null"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Sets []WorkoutSetModel `gorm:"foreignKey:WorkoutID"`
}

// TableName explicitly sets the table name for GORM.
func (WorkoutModel) TableName() string {
	return "workouts"
}

// WorkoutSetModel mirrors the 'workout_sets' table.
type WorkoutSetModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WorkoutID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExerciseName string    `gorm:"type:varchar(100);not null"`
	SetNumber    int       `gorm:"not null"`
	WeightKg     float64   `gorm:"not null;default:0"`
	Reps         int       `gorm:"not null;default:0"`
	CompletedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WorkoutSetModel) TableName() string {
	return "workout_sets"
}
