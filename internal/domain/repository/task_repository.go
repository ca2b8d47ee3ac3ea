package repository

import (
	"context"
	"errors"

	"tasklist/internal/domain/entity"
)

// ErrTaskNotFound is returned when a task does not exist within the given list.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// FindByList retrieves a page of tasks belonging to listID, ordered by id.
	FindByList(ctx context.Context, listID int64, skip, limit int) ([]*entity.Task, error)

	// FindByListAndID retrieves a single task scoped to a list.
	FindByListAndID(ctx context.Context, listID, taskID int64) (*entity.Task, error)

	// Create persists a new task entity and fills in the generated ID.
	Create(ctx context.Context, task *entity.Task) error

	// UpdateCompleted sets the completed flag of a task.
	// Returns ErrTaskNotFound when no row matched.
	UpdateCompleted(ctx context.Context, id int64, completed bool) error

	// Delete removes a task row by ID. Returns ErrTaskNotFound when no row matched.
	Delete(ctx context.Context, id int64) error

	// DeleteByList removes all tasks belonging to listID.
	DeleteByList(ctx context.Context, listID int64) error
}
