package impl

import (
	"context"
	"io"
	"log/slog"

	"tasklist/internal/domain/entity"
	"tasklist/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockListRepository struct {
	mock.Mock
}

func (m *mockListRepository) FindByID(ctx context.Context, id int64) (*entity.List, error) {
	args := m.Called(ctx, id)
	if list, ok := args.Get(0).(*entity.List); ok {
		return list, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockListRepository) FindByName(ctx context.Context, ownerID int64, name string) (*entity.List, error) {
	args := m.Called(ctx, ownerID, name)
	if list, ok := args.Get(0).(*entity.List); ok {
		return list, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockListRepository) FindByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]*entity.List, error) {
	args := m.Called(ctx, ownerID, skip, limit)
	if lists, ok := args.Get(0).([]*entity.List); ok {
		return lists, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockListRepository) Create(ctx context.Context, list *entity.List) error {
	args := m.Called(ctx, list)

	return args.Error(0)
}

func (m *mockListRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) FindByList(ctx context.Context, listID int64, skip, limit int) ([]*entity.Task, error) {
	args := m.Called(ctx, listID, skip, limit)
	if tasks, ok := args.Get(0).([]*entity.Task); ok {
		return tasks, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTaskRepository) FindByListAndID(ctx context.Context, listID, taskID int64) (*entity.Task, error) {
	args := m.Called(ctx, listID, taskID)
	if task, ok := args.Get(0).(*entity.Task); ok {
		return task, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)

	return args.Error(0)
}

func (m *mockTaskRepository) UpdateCompleted(ctx context.Context, id int64, completed bool) error {
	args := m.Called(ctx, id, completed)

	return args.Error(0)
}

func (m *mockTaskRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockTaskRepository) DeleteByList(ctx context.Context, listID int64) error {
	args := m.Called(ctx, listID)

	return args.Error(0)
}

// mockRepositoryFactory hands out the repositories the transaction manager was
// built with, mimicking transaction-bound repository instances.
type mockRepositoryFactory struct {
	listRepo repository.ListRepository
	taskRepo repository.TaskRepository
}

func (f *mockRepositoryFactory) ListRepo() repository.ListRepository { return f.listRepo }
func (f *mockRepositoryFactory) TaskRepo() repository.TaskRepository { return f.taskRepo }

// mockTransactionManager invokes the callback with its factory and records the
// call, letting tests assert on what ran inside the transaction.
type mockTransactionManager struct {
	mock.Mock
	factory *mockRepositoryFactory
}

func (m *mockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.factory)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID int64, username string) (string, error) {
	args := m.Called(userID, username)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(token string) (string, error) {
	args := m.Called(token)

	return args.String(0), args.Error(1)
}
