package impl

import (
	"context"
	"time"

	"sharefit/internal/domain/entity"
	domainerrors "sharefit/internal/domain/errors"
	"sharefit/internal/domain/repository"
	"sharefit/internal/errors"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
)

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	userRepo    repository.UserRepository
	notifier    usecase.Notifier
}

// NewWorkoutService creates a new workout service instance
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	userRepo repository.UserRepository,
	notifier usecase.Notifier,
) usecase.WorkoutUsecase {
	return &workoutService{
		workoutRepo: workoutRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// StartWorkout opens a new live workout session and announces it.
func (s *workoutService) StartWorkout(ctx context.Context, userID uuid.UUID, name string) (*entity.Workout, error) {
	actor, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	workout := &entity.Workout{
		UserID:    userID,
		Name:      name,
		Status:    entity.WorkoutStatusInProgress,
		StartedAt: time.Now(),
	}
	if err := s.workoutRepo.CreateWorkout(ctx, workout); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create workout")
	}

	s.notifier.WorkoutStarted(ctx, actor, workout)

	return workout, nil
}

// LogSet records one completed set on an in-progress workout, updates the
// denormalized totals and announces the set to live viewers.
func (s *workoutService) LogSet(ctx context.Context, userID, workoutID uuid.UUID, input *usecase.LogSetInput) (*entity.WorkoutSet, error) {
	workout, err := s.findOwnedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.Status != entity.WorkoutStatusInProgress {
		return nil, domainerrors.ErrWorkoutAlreadyCompleted
	}

	set := &entity.WorkoutSet{
		WorkoutID:    workoutID,
		ExerciseName: input.ExerciseName,
		SetNumber:    input.SetNumber,
		WeightKg:     input.WeightKg,
		Reps:         input.Reps,
		CompletedAt:  time.Now(),
	}
	if err := s.workoutRepo.CreateSet(ctx, set); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create set")
	}

	workout.TotalSets++
	workout.TotalVolume += input.WeightKg * float64(input.Reps)
	if err := s.workoutRepo.UpdateWorkout(ctx, workout); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update workout totals")
	}

	s.notifier.WorkoutUpdated(ctx, workout, set)

	return set, nil
}

// CompleteWorkout finishes a workout, freezes its totals and announces the
// result to live viewers and the owner's followers.
func (s *workoutService) CompleteWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*entity.Workout, error) {
	workout, err := s.findOwnedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.Status == entity.WorkoutStatusCompleted {
		return nil, domainerrors.ErrWorkoutAlreadyCompleted
	}

	now := time.Now()
	workout.Status = entity.WorkoutStatusCompleted
	workout.CompletedAt = &now
	workout.DurationMin = int(now.Sub(workout.StartedAt).Minutes())
	if err := s.workoutRepo.UpdateWorkout(ctx, workout); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to complete workout")
	}

	actor, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.notifier.WorkoutCompleted(ctx, actor, workout)

	return workout, nil
}

// SendCheer delivers a cheer to the owner of an active workout. Cheering a
// finished workout is rejected.
func (s *workoutService) SendCheer(ctx context.Context, fromUserID, workoutID uuid.UUID, message string) error {
	workout, err := s.findWorkout(ctx, workoutID)
	if err != nil {
		return err
	}
	if workout.Status != entity.WorkoutStatusInProgress {
		return domainerrors.ErrWorkoutAlreadyCompleted
	}

	actor, err := s.findUser(ctx, fromUserID)
	if err != nil {
		return err
	}

	s.notifier.Cheer(ctx, actor, workout, message)

	return nil
}

// GetWorkout returns one workout with its logged sets.
func (s *workoutService) GetWorkout(ctx context.Context, workoutID uuid.UUID) (*entity.Workout, []*entity.WorkoutSet, error) {
	workout, err := s.findWorkout(ctx, workoutID)
	if err != nil {
		return nil, nil, err
	}

	sets, err := s.workoutRepo.ListSetsByWorkout(ctx, workoutID)
	if err != nil {
		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sets")
	}

	return workout, sets, nil
}

// ListWorkouts returns a user's workout history, newest first.
func (s *workoutService) ListWorkouts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Workout, error) {
	workouts, err := s.workoutRepo.ListWorkoutsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list workouts")
	}

	return workouts, nil
}

func (s *workoutService) findWorkout(ctx context.Context, workoutID uuid.UUID) (*entity.Workout, error) {
	workout, err := s.workoutRepo.FindWorkoutByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return nil, domainerrors.ErrWorkoutNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find workout")
	}

	return workout, nil
}

func (s *workoutService) findOwnedWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*entity.Workout, error) {
	workout, err := s.findWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.UserID != userID {
		return nil, domainerrors.ErrWorkoutNotOwned
	}

	return workout, nil
}

func (s *workoutService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return user, nil
}
