package impl

import (
	"context"
	"testing"

	"tasklist/internal/domain/entity"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/domain/repository"
	"tasklist/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// taskServiceFixtures holds all test dependencies for task service tests.
type taskServiceFixtures struct {
	service  usecase.TaskUsecase
	listRepo *mockListRepository
	taskRepo *mockTaskRepository
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	t.Helper()

	listRepo := &mockListRepository{}
	taskRepo := &mockTaskRepository{}

	service := NewTaskService(TaskServiceParams{
		ListRepo: listRepo,
		TaskRepo: taskRepo,
		Logger:   newDiscardLogger(),
	})

	return taskServiceFixtures{
		service:  service,
		listRepo: listRepo,
		taskRepo: taskRepo,
	}
}

// ownedList registers a list lookup for the happy ownership path.
func (fx taskServiceFixtures) ownedList(ctx context.Context, listID, ownerID int64) {
	fx.listRepo.On("FindByID", ctx, listID).
		Return(&entity.List{ID: listID, Name: "groceries", UserID: ownerID}, nil)
}

func TestTaskService_ListTasks_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	tasks := []*entity.Task{{ID: 1, Title: "milk", ListID: 3}}

	fx.ownedList(ctx, 3, 7)
	fx.taskRepo.On("FindByList", ctx, int64(3), 0, usecase.DefaultPageLimit).
		Return(tasks, nil)

	got, err := fx.service.ListTasks(ctx, 7, 3, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func TestTaskService_ListTasks_UnknownList(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.listRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrListNotFound)

	_, err := fx.service.ListTasks(ctx, 7, 99, 0, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrListNotFound)
	fx.taskRepo.AssertNotCalled(t, "FindByList", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_ListTasks_ForeignListReadsAsNotFound(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.listRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.List{ID: 3, UserID: 42}, nil)

	_, err := fx.service.ListTasks(ctx, 7, 3, 0, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrListNotFound)
}

func TestTaskService_CreateTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.ownedList(ctx, 3, 7)
	fx.taskRepo.On("Create", ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(args mock.Arguments) {
			task := args.Get(1).(*entity.Task)
			task.ID = 11
		}).
		Return(nil)

	task, err := fx.service.CreateTask(ctx, 7, 3, &usecase.CreateTaskInput{Title: " milk "})

	require.NoError(t, err)
	assert.Equal(t, int64(11), task.ID)
	assert.Equal(t, "milk", task.Title)
	assert.Equal(t, int64(3), task.ListID)
	assert.False(t, task.Completed)
}

func TestTaskService_CreateTask_EmptyTitle(t *testing.T) {
	fx := createTestTaskService(t)

	_, err := fx.service.CreateTask(context.Background(), 7, 3, &usecase.CreateTaskInput{Title: "  "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_GetTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	task := &entity.Task{ID: 11, Title: "milk", ListID: 3}

	fx.ownedList(ctx, 3, 7)
	fx.taskRepo.On("FindByListAndID", ctx, int64(3), int64(11)).Return(task, nil)

	got, err := fx.service.GetTask(ctx, 7, 3, 11)

	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestTaskService_GetTask_NotFoundInList(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.ownedList(ctx, 3, 7)
	fx.taskRepo.On("FindByListAndID", ctx, int64(3), int64(99)).
		Return(nil, repository.ErrTaskNotFound)

	_, err := fx.service.GetTask(ctx, 7, 3, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_SetTaskCompleted_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	task := &entity.Task{ID: 11, Title: "milk", ListID: 3, Completed: false}

	fx.ownedList(ctx, 3, 7)
	fx.taskRepo.On("FindByListAndID", ctx, int64(3), int64(11)).Return(task, nil)
	fx.taskRepo.On("UpdateCompleted", ctx, int64(11), true).Return(nil)

	got, err := fx.service.SetTaskCompleted(ctx, 7, 3, 11, true)

	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestTaskService_SetTaskCompleted_AbsentTask(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.ownedList(ctx, 3, 7)
	fx.taskRepo.On("FindByListAndID", ctx, int64(3), int64(99)).
		Return(nil, repository.ErrTaskNotFound)

	_, err := fx.service.SetTaskCompleted(ctx, 7, 3, 99, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	fx.taskRepo.AssertNotCalled(t, "UpdateCompleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_DeleteTask_ReturnsRemovedTask(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	task := &entity.Task{ID: 11, Title: "milk", ListID: 3}

	fx.ownedList(ctx, 3, 7)
	fx.taskRepo.On("FindByListAndID", ctx, int64(3), int64(11)).Return(task, nil)
	fx.taskRepo.On("Delete", ctx, int64(11)).Return(nil)

	got, err := fx.service.DeleteTask(ctx, 7, 3, 11)

	require.NoError(t, err)
	assert.Equal(t, task, got)
	fx.taskRepo.AssertExpectations(t)
}

func TestTaskService_DeleteTask_AbsentTask(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.ownedList(ctx, 3, 7)
	fx.taskRepo.On("FindByListAndID", ctx, int64(3), int64(99)).
		Return(nil, repository.ErrTaskNotFound)

	_, err := fx.service.DeleteTask(ctx, 7, 3, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	fx.taskRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTaskService_DeleteTask_ForeignList(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.listRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.List{ID: 3, UserID: 42}, nil)

	_, err := fx.service.DeleteTask(ctx, 7, 3, 11)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrListNotFound)
	fx.taskRepo.AssertNotCalled(t, "FindByListAndID", mock.Anything, mock.Anything, mock.Anything)
}
