package impl

import (
	"context"
	"testing"
	"time"

	"sharefit/internal/domain/entity"
	domainerrors "sharefit/internal/domain/errors"
	"sharefit/internal/domain/repository"
	mockRepo "sharefit/internal/mocks/repository"
	mockUC "sharefit/internal/mocks/usecase"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestWorkoutService(t *testing.T) (
	usecase.WorkoutUsecase,
	*mockRepo.MockWorkoutRepository,
	*mockRepo.MockUserRepository,
	*mockUC.MockNotifier,
) {
	workoutRepo := mockRepo.NewMockWorkoutRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notifier := mockUC.NewMockNotifier(t)

	service := NewWorkoutService(workoutRepo, userRepo, notifier)

	return service, workoutRepo, userRepo, notifier
}

func TestWorkoutService_StartWorkout_Announces(t *testing.T) {
	service, workoutRepo, userRepo, notifier := createTestWorkoutService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	workoutRepo.EXPECT().CreateWorkout(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().WorkoutStarted(ctx, actor, mock.Anything).Return()

	workout, err := service.StartWorkout(ctx, actor.ID, "Push day")

	require.NoError(t, err)
	assert.Equal(t, entity.WorkoutStatusInProgress, workout.Status)
	assert.Equal(t, "Push day", workout.Name)
	assert.False(t, workout.StartedAt.IsZero())
}

func TestWorkoutService_LogSet_UpdatesTotals(t *testing.T) {
	service, workoutRepo, _, notifier := createTestWorkoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	workout := &entity.Workout{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      entity.WorkoutStatusInProgress,
		TotalSets:   2,
		TotalVolume: 200,
	}
	workoutRepo.EXPECT().FindWorkoutByID(ctx, workout.ID).Return(workout, nil)
	workoutRepo.EXPECT().CreateSet(ctx, mock.Anything).Return(nil)
	workoutRepo.EXPECT().UpdateWorkout(ctx, workout).Return(nil)
	notifier.EXPECT().WorkoutUpdated(ctx, workout, mock.Anything).Return()

	set, err := service.LogSet(ctx, userID, workout.ID, &usecase.LogSetInput{
		ExerciseName: "squat",
		SetNumber:    3,
		WeightKg:     100,
		Reps:         5,
	})

	require.NoError(t, err)
	assert.Equal(t, "squat", set.ExerciseName)
	assert.Equal(t, 3, workout.TotalSets)
	assert.InDelta(t, 700.0, workout.TotalVolume, 0.001)
}

func TestWorkoutService_LogSet_NotOwner(t *testing.T) {
	service, workoutRepo, _, _ := createTestWorkoutService(t)

	ctx := context.Background()
	workout := &entity.Workout{ID: uuid.New(), UserID: uuid.New(), Status: entity.WorkoutStatusInProgress}
	workoutRepo.EXPECT().FindWorkoutByID(ctx, workout.ID).Return(workout, nil)

	_, err := service.LogSet(ctx, uuid.New(), workout.ID, &usecase.LogSetInput{ExerciseName: "squat"})

	assert.ErrorIs(t, err, domainerrors.ErrWorkoutNotOwned)
}

func TestWorkoutService_LogSet_CompletedWorkout(t *testing.T) {
	service, workoutRepo, _, _ := createTestWorkoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	workout := &entity.Workout{ID: uuid.New(), UserID: userID, Status: entity.WorkoutStatusCompleted}
	workoutRepo.EXPECT().FindWorkoutByID(ctx, workout.ID).Return(workout, nil)

	_, err := service.LogSet(ctx, userID, workout.ID, &usecase.LogSetInput{ExerciseName: "squat"})

	assert.ErrorIs(t, err, domainerrors.ErrWorkoutAlreadyCompleted)
}

func TestWorkoutService_CompleteWorkout_FreezesTotals(t *testing.T) {
	service, workoutRepo, userRepo, notifier := createTestWorkoutService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	workout := &entity.Workout{
		ID:        uuid.New(),
		UserID:    actor.ID,
		Status:    entity.WorkoutStatusInProgress,
		StartedAt: time.Now().Add(-45 * time.Minute),
	}
	workoutRepo.EXPECT().FindWorkoutByID(ctx, workout.ID).Return(workout, nil)
	workoutRepo.EXPECT().UpdateWorkout(ctx, workout).Return(nil)
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	notifier.EXPECT().WorkoutCompleted(ctx, actor, workout).Return()

	completed, err := service.CompleteWorkout(ctx, actor.ID, workout.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.WorkoutStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, 45, completed.DurationMin)
}

func TestWorkoutService_CompleteWorkout_AlreadyCompleted(t *testing.T) {
	service, workoutRepo, _, _ := createTestWorkoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	workout := &entity.Workout{ID: uuid.New(), UserID: userID, Status: entity.WorkoutStatusCompleted}
	workoutRepo.EXPECT().FindWorkoutByID(ctx, workout.ID).Return(workout, nil)

	_, err := service.CompleteWorkout(ctx, userID, workout.ID)

	assert.ErrorIs(t, err, domainerrors.ErrWorkoutAlreadyCompleted)
}

func TestWorkoutService_SendCheer_ActiveWorkout(t *testing.T) {
	service, workoutRepo, userRepo, notifier := createTestWorkoutService(t)

	ctx := context.Background()
	cheerer := &entity.User{ID: uuid.New(), DisplayName: "jiyeon"}
	workout := &entity.Workout{ID: uuid.New(), UserID: uuid.New(), Status: entity.WorkoutStatusInProgress}
	workoutRepo.EXPECT().FindWorkoutByID(ctx, workout.ID).Return(workout, nil)
	userRepo.EXPECT().FindUserByID(ctx, cheerer.ID).Return(cheerer, nil)
	notifier.EXPECT().Cheer(ctx, cheerer, workout, "almost there!").Return()

	err := service.SendCheer(ctx, cheerer.ID, workout.ID, "almost there!")

	require.NoError(t, err)
}

func TestWorkoutService_SendCheer_FinishedWorkout(t *testing.T) {
	service, workoutRepo, _, _ := createTestWorkoutService(t)

	ctx := context.Background()
	workout := &entity.Workout{ID: uuid.New(), UserID: uuid.New(), Status: entity.WorkoutStatusCompleted}
	workoutRepo.EXPECT().FindWorkoutByID(ctx, workout.ID).Return(workout, nil)

	err := service.SendCheer(ctx, uuid.New(), workout.ID, "too late")

	assert.ErrorIs(t, err, domainerrors.ErrWorkoutAlreadyCompleted)
}

func TestWorkoutService_SendCheer_UnknownWorkout(t *testing.T) {
	service, workoutRepo, _, _ := createTestWorkoutService(t)

	ctx := context.Background()
	workoutID := uuid.New()
	workoutRepo.EXPECT().FindWorkoutByID(ctx, workoutID).Return(nil, repository.ErrWorkoutNotFound)

	err := service.SendCheer(ctx, uuid.New(), workoutID, "hello?")

	assert.ErrorIs(t, err, domainerrors.ErrWorkoutNotFound)
}

func TestWorkoutService_GetWorkout_WithSets(t *testing.T) {
	service, workoutRepo, _, _ := createTestWorkoutService(t)

	ctx := context.Background()
	workout := &entity.Workout{ID: uuid.New(), UserID: uuid.New(), Status: entity.WorkoutStatusInProgress}
	sets := []*entity.WorkoutSet{{ID: uuid.New(), WorkoutID: workout.ID, ExerciseName: "bench"}}
	workoutRepo.EXPECT().FindWorkoutByID(ctx, workout.ID).Return(workout, nil)
	workoutRepo.EXPECT().ListSetsByWorkout(ctx, workout.ID).Return(sets, nil)

	got, gotSets, err := service.GetWorkout(ctx, workout.ID)

	require.NoError(t, err)
	assert.Equal(t, workout.ID, got.ID)
	assert.Len(t, gotSets, 1)
}
