package postgres

import (
	"context"

	"sharefit/internal/domain/entity"
	domainerrors "sharefit/internal/domain/errors"
	"sharefit/internal/domain/repository"
	"sharefit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workoutRepository implements the repository.WorkoutRepository interface.
type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository is the constructor for workoutRepository.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &workoutRepository{
		db: db,
	}
}

// CreateWorkout persists a newly started workout.
func (repo *workoutRepository) CreateWorkout(ctx context.Context, workout *entity.Workout) error {
	workoutM := fromWorkoutDomain(workout)

	if err := repo.db.WithContext(ctx).Create(workoutM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workout")
	}

	workout.ID = workoutM.ID
	workout.CreatedAt = workoutM.CreatedAt
	workout.UpdatedAt = workoutM.UpdatedAt

	return nil
}

// FindWorkoutByID retrieves a workout by its unique ID.
func (repo *workoutRepository) FindWorkoutByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	var workoutM model.WorkoutModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&workoutM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkoutNotFound
		}

		return nil, errors.Wrap(err, "failed to find workout by ID")
	}

	return toWorkoutDomain(&workoutM), nil
}

// UpdateWorkout updates the workout's status and denormalized totals.
func (repo *workoutRepository) UpdateWorkout(ctx context.Context, workout *entity.Workout) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Where("id = ?", workout.ID).
		Updates(map[string]any{
			"status":       string(workout.Status),
			"total_sets":   workout.TotalSets,
			"total_volume": workout.TotalVolume,
			"duration_min": workout.DurationMin,
			"completed_at": workout.CompletedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update workout")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWorkoutNotFound
	}

	return nil
}

// ListWorkoutsByUser returns a user's workouts, newest first.
func (repo *workoutRepository) ListWorkoutsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Workout, error) {
	var workoutModels []*model.WorkoutModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&workoutModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list workouts by user")
	}

	workouts := make([]*entity.Workout, 0, len(workoutModels))
	for _, workoutM := range workoutModels {
		workouts = append(workouts, toWorkoutDomain(workoutM))
	}

	return workouts, nil
}

// CreateSet persists one logged set.
func (repo *workoutRepository) CreateSet(ctx context.Context, set *entity.WorkoutSet) error {
	setM := &model.WorkoutSetModel{
		ID:           set.ID,
		WorkoutID:    set.WorkoutID,
		ExerciseName: set.ExerciseName,
		SetNumber:    set.SetNumber,
		WeightKg:     set.WeightKg,
		Reps:         set.Reps,
		CompletedAt:  set.CompletedAt,
	}

	if err := repo.db.WithContext(ctx).Create(setM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrWorkoutNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workout set")
	}

	set.ID = setM.ID

	return nil
}

// ListSetsByWorkout returns all sets of a workout in logging order.
func (repo *workoutRepository) ListSetsByWorkout(ctx context.Context, workoutID uuid.UUID) ([]*entity.WorkoutSet, error) {
	var setModels []*model.WorkoutSetModel

	if err := repo.db.WithContext(ctx).
		Where("workout_id = ?", workoutID).
		Order("completed_at ASC").
		Find(&setModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sets by workout")
	}

	sets := make([]*entity.WorkoutSet, 0, len(setModels))
	for _, setM := range setModels {
		sets = append(sets, &entity.WorkoutSet{
			ID:           setM.ID,
			WorkoutID:    setM.WorkoutID,
			ExerciseName: setM.ExerciseName,
			SetNumber:    setM.SetNumber,
			WeightKg:     setM.WeightKg,
			Reps:         setM.Reps,
			CompletedAt:  setM.CompletedAt,
		})
	}

	return sets, nil
}

// --- Mapper Functions ---

// toWorkoutDomain converts a GORM WorkoutModel to a domain Workout entity.
func toWorkoutDomain(data *model.WorkoutModel) *entity.Workout {
	if data == nil {
		return nil
	}

	return &entity.Workout{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Status:      entity.WorkoutStatus(data.Status),
		TotalSets:   data.TotalSets,
		TotalVolume: data.TotalVolume,
		DurationMin: data.DurationMin,
		StartedAt:   data.StartedAt,
		CompletedAt: data.CompletedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromWorkoutDomain converts a domain Workout entity to a GORM WorkoutModel.
func fromWorkoutDomain(data *entity.Workout) *model.WorkoutModel {
	if data == nil {
		return nil
	}

	return &model.WorkoutModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Status:      string(data.Status),
		TotalSets:   data.TotalSets,
		TotalVolume: data.TotalVolume,
		DurationMin: data.DurationMin,
		StartedAt:   data.StartedAt,
		CompletedAt: data.CompletedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
