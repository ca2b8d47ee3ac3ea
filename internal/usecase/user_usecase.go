// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tasklist/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to sign up a new user.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated bearer token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
