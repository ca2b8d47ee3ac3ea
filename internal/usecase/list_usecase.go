package usecase

import (
	"context"

	"tasklist/internal/domain/entity"
)

// DefaultPageLimit caps collection reads when the caller does not set a limit.
const DefaultPageLimit = 20

// CreateListInput defines the data required to create a list.
type CreateListInput struct {
	Name string
}

// ListUsecase defines the interface for list-related business operations.
// Every operation is scoped to the authenticated owner: lists belonging to
// other users are reported as not found rather than forbidden, so the API
// never confirms their existence.
type ListUsecase interface {
	ListLists(ctx context.Context, ownerID int64, skip, limit int) ([]*entity.List, error)
	CreateList(ctx context.Context, ownerID int64, input *CreateListInput) (*entity.List, error)
	GetList(ctx context.Context, ownerID, listID int64) (*entity.List, error)
	GetListByName(ctx context.Context, ownerID int64, name string) (*entity.List, error)

	// DeleteList removes the list and all of its tasks in one transaction,
	// returning the removed list.
	DeleteList(ctx context.Context, ownerID, listID int64) (*entity.List, error)
}
