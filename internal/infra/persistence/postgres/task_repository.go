package postgres

import (
	"context"

	"tasklist/internal/domain/entity"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/domain/repository"
	"tasklist/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// FindByList retrieves a page of tasks belonging to listID, ordered by id.
func (repo *taskRepository) FindByList(ctx context.Context, listID int64, skip, limit int) ([]*entity.Task, error) {
	var taskMs []*model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&taskMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tasks by list")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for _, taskM := range taskMs {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// FindByListAndID retrieves a single task scoped to a list.
func (repo *taskRepository) FindByListAndID(ctx context.Context, listID, taskID int64) (*entity.Task, error) {
	var taskM model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("list_id = ? AND id = ?", listID, taskID).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by list and id")
	}

	return toTaskDomain(&taskM), nil
}

// Create persists a new task entity to the database.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrListNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt

	return nil
}

// UpdateCompleted sets the completed flag of a task.
func (repo *taskRepository) UpdateCompleted(ctx context.Context, id int64, completed bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", id).
		Update("completed", completed)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task row by ID.
func (repo *taskRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// DeleteByList removes all tasks belonging to listID. Deleting zero rows is
// not an error; an empty list is a valid delete target.
func (repo *taskRepository) DeleteByList(ctx context.Context, listID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Delete(&model.TaskModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete tasks for list")
	}

	return nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:        data.ID,
		Title:     data.Title,
		Completed: data.Completed,
		ListID:    data.ListID,
		CreatedAt: data.CreatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel for persistence.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:        data.ID,
		Title:     data.Title,
		Completed: data.Completed,
		ListID:    data.ListID,
	}
}
