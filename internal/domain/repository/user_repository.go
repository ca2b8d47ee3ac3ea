// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tasklist/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUsername is returned when creating a user whose username is taken.
var ErrDuplicateUsername = errors.New("username already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity and fills in the generated ID.
	Create(ctx context.Context, user *entity.User) error
}
