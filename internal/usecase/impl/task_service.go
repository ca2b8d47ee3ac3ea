package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tasklist/internal/delivery/context"
	"tasklist/internal/domain/entity"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/domain/repository"
	"tasklist/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	listRepo repository.ListRepository
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	ListRepo repository.ListRepository
	TaskRepo repository.TaskRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		listRepo: params.ListRepo,
		taskRepo: params.TaskRepo,
		logger:   params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTasks returns a page of tasks belonging to an owned list.
func (srv *taskService) ListTasks(ctx context.Context, ownerID, listID int64, skip, limit int) ([]*entity.Task, error) {
	if err := srv.checkListOwnership(ctx, ownerID, listID); err != nil {
		return nil, err
	}

	skip, limit = normalizePage(skip, limit)

	tasks, err := srv.taskRepo.FindByList(ctx, listID, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// CreateTask persists a new, uncompleted task under an owned list.
// The list must exist; a dangling list id fails with not-found instead of
// inserting an orphan row.
func (srv *taskService) CreateTask(ctx context.Context, ownerID, listID int64, input *usecase.CreateTaskInput) (*entity.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("task title is required")
	}

	if err := srv.checkListOwnership(ctx, ownerID, listID); err != nil {
		return nil, err
	}

	task := &entity.Task{
		Title:     title,
		Completed: false,
		ListID:    listID,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, domainerrors.ErrListNotFound.WrapMessage("list vanished before task creation")
		}

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Info("Task created", slog.Int64("taskID", task.ID), slog.Int64("listID", listID))

	return task, nil
}

// GetTask retrieves a single task scoped to an owned list.
func (srv *taskService) GetTask(ctx context.Context, ownerID, listID, taskID int64) (*entity.Task, error) {
	if err := srv.checkListOwnership(ctx, ownerID, listID); err != nil {
		return nil, err
	}

	return srv.findTask(ctx, listID, taskID)
}

// SetTaskCompleted flips the completed flag and returns the updated task.
func (srv *taskService) SetTaskCompleted(ctx context.Context, ownerID, listID, taskID int64, completed bool) (*entity.Task, error) {
	if err := srv.checkListOwnership(ctx, ownerID, listID); err != nil {
		return nil, err
	}

	task, err := srv.findTask(ctx, listID, taskID)
	if err != nil {
		return nil, err
	}

	if err := srv.taskRepo.UpdateCompleted(ctx, task.ID, completed); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task vanished before update")
		}

		return nil, errors.Wrap(err, "failed to update task")
	}

	task.Completed = completed

	return task, nil
}

// DeleteTask removes a task after an explicit existence check, returning the
// removed row's data. Deleting an absent task fails with not-found.
func (srv *taskService) DeleteTask(ctx context.Context, ownerID, listID, taskID int64) (*entity.Task, error) {
	if err := srv.checkListOwnership(ctx, ownerID, listID); err != nil {
		return nil, err
	}

	task, err := srv.findTask(ctx, listID, taskID)
	if err != nil {
		return nil, err
	}

	if err := srv.taskRepo.Delete(ctx, task.ID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task vanished before deletion")
		}

		return nil, errors.Wrap(err, "failed to delete task")
	}

	srv.log(ctx).Info("Task deleted", slog.Int64("taskID", task.ID), slog.Int64("listID", listID))

	return task, nil
}

// checkListOwnership verifies the list exists and belongs to ownerID.
// Foreign lists are reported as not found, never as forbidden.
func (srv *taskService) checkListOwnership(ctx context.Context, ownerID, listID int64) error {
	list, err := srv.listRepo.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return domainerrors.ErrListNotFound.WrapMessage("no such list")
		}

		return errors.Wrap(err, "failed to find list for ownership check")
	}

	if list.UserID != ownerID {
		return domainerrors.ErrListNotFound.WrapMessage("list owned by another user")
	}

	return nil
}

func (srv *taskService) findTask(ctx context.Context, listID, taskID int64) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByListAndID(ctx, listID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("no such task in list")
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	return task, nil
}
