package repository

import (
	"context"
	"errors"

	"tasklist/internal/domain/entity"
)

// ErrListNotFound is returned when a list does not exist.
var ErrListNotFound = errors.New("list not found")

// ListRepository defines the standard operations for list persistence.
// All reads return lists with their tasks preloaded, ordered by id ascending.
type ListRepository interface {
	// FindByID retrieves a single list by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.List, error)

	// FindByName retrieves the first list with the given name owned by ownerID.
	FindByName(ctx context.Context, ownerID int64, name string) (*entity.List, error)

	// FindByOwner retrieves a page of lists owned by ownerID, ordered by id.
	FindByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]*entity.List, error)

	// Create persists a new list entity and fills in the generated ID.
	Create(ctx context.Context, list *entity.List) error

	// Delete removes a list row by ID. Returns ErrListNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
