package usecase

import (
	"context"

	"tasklist/internal/domain/entity"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title string
}

// TaskUsecase defines the interface for task-related business operations.
// All operations verify that the enclosing list exists and belongs to the
// authenticated owner before touching any task.
type TaskUsecase interface {
	ListTasks(ctx context.Context, ownerID, listID int64, skip, limit int) ([]*entity.Task, error)
	CreateTask(ctx context.Context, ownerID, listID int64, input *CreateTaskInput) (*entity.Task, error)
	GetTask(ctx context.Context, ownerID, listID, taskID int64) (*entity.Task, error)
	SetTaskCompleted(ctx context.Context, ownerID, listID, taskID int64, completed bool) (*entity.Task, error)

	// DeleteTask removes the task and returns the removed row's data.
	DeleteTask(ctx context.Context, ownerID, listID, taskID int64) (*entity.Task, error)
}
