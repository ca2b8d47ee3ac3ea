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

// listRepository implements the repository.ListRepository interface using GORM.
type listRepository struct {
	db *gorm.DB
}

// NewListRepository is the constructor for listRepository.
func NewListRepository(db *gorm.DB) repository.ListRepository {
	return &listRepository{db: db}
}

// FindByID retrieves a single list with its tasks preloaded.
func (repo *listRepository) FindByID(ctx context.Context, id int64) (*entity.List, error) {
	var listM model.ListModel

	if err := repo.db.WithContext(ctx).
		Preload("Tasks", taskOrder).
		Where("id = ?", id).
		First(&listM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to find list by id")
	}

	return toListDomain(&listM), nil
}

// FindByName retrieves the first list with the given name owned by ownerID.
func (repo *listRepository) FindByName(ctx context.Context, ownerID int64, name string) (*entity.List, error) {
	var listM model.ListModel

	if err := repo.db.WithContext(ctx).
		Preload("Tasks", taskOrder).
		Where("user_id = ? AND name = ?", ownerID, name).
		Order("id ASC").
		First(&listM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to find list by name")
	}

	return toListDomain(&listM), nil
}

// FindByOwner retrieves a page of lists owned by ownerID.
// Order is id ascending so identical skip/limit reads return identical pages.
func (repo *listRepository) FindByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]*entity.List, error) {
	var listMs []*model.ListModel

	if err := repo.db.WithContext(ctx).
		Preload("Tasks", taskOrder).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&listMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find lists by owner")
	}

	lists := make([]*entity.List, 0, len(listMs))
	for _, listM := range listMs {
		lists = append(lists, toListDomain(listM))
	}

	return lists, nil
}

// Create persists a new list entity to the database.
func (repo *listRepository) Create(ctx context.Context, list *entity.List) error {
	listM := fromListDomain(list)

	if err := repo.db.WithContext(ctx).Create(listM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required list information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create list")
	}

	list.ID = listM.ID
	list.CreatedAt = listM.CreatedAt

	return nil
}

// Delete removes a list row by ID.
func (repo *listRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ListModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete list")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListNotFound
	}

	return nil
}

// taskOrder keeps preloaded tasks in a stable order.
func taskOrder(db *gorm.DB) *gorm.DB {
	return db.Order("tasks.id ASC")
}

// --- Mapper Functions ---

// toListDomain converts a GORM ListModel to a domain List entity.
func toListDomain(data *model.ListModel) *entity.List {
	if data == nil {
		return nil
	}

	tasks := make([]*entity.Task, 0, len(data.Tasks))
	for _, taskM := range data.Tasks {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return &entity.List{
		ID:        data.ID,
		Name:      data.Name,
		UserID:    data.UserID,
		Tasks:     tasks,
		CreatedAt: data.CreatedAt,
	}
}

// fromListDomain converts a domain List entity to a GORM ListModel for persistence.
func fromListDomain(data *entity.List) *model.ListModel {
	if data == nil {
		return nil
	}

	return &model.ListModel{
		ID:     data.ID,
		Name:   data.Name,
		UserID: data.UserID,
	}
}
