// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tasklist/internal/delivery/context"
	"tasklist/internal/domain/entity"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/domain/repository"
	"tasklist/internal/domain/service"
	"tasklist/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenTypeBearer is the token_type value returned by every login variant.
const tokenTypeBearer = "bearer"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and persists a new user.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password are required")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.ErrUsernameTaken.WrapMessage("username already registered")
		}

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies the credentials and issues a bearer token.
// An unknown username and a wrong password produce different status codes but
// the same message text, so the response never confirms which half failed.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrCredentialsNotFound.WrapMessage("unknown username")
		}

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if user.Disabled {
		srv.log(ctx).Warn("Login attempt for disabled account", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("account disabled")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	accessToken, err := srv.tokenService.Issue(user.ID, user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
	}, nil
}
