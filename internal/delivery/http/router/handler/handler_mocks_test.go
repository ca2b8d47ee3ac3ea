package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"tasklist/internal/delivery/http/validator"
	"tasklist/internal/domain/entity"
	"tasklist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context with the validator installed, a JSON
// request body, and an authenticated user, mirroring what the middleware chain
// provides in production.
func newTestContext(t *testing.T, method, target, body string, user *entity.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set("currentUser", user)
	}

	return c, rec
}

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockListUsecase struct {
	mock.Mock
}

func (m *mockListUsecase) ListLists(ctx context.Context, ownerID int64, skip, limit int) ([]*entity.List, error) {
	args := m.Called(ctx, ownerID, skip, limit)
	if lists, ok := args.Get(0).([]*entity.List); ok {
		return lists, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockListUsecase) CreateList(ctx context.Context, ownerID int64, input *usecase.CreateListInput) (*entity.List, error) {
	args := m.Called(ctx, ownerID, input)
	if list, ok := args.Get(0).(*entity.List); ok {
		return list, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockListUsecase) GetList(ctx context.Context, ownerID, listID int64) (*entity.List, error) {
	args := m.Called(ctx, ownerID, listID)
	if list, ok := args.Get(0).(*entity.List); ok {
		return list, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockListUsecase) GetListByName(ctx context.Context, ownerID int64, name string) (*entity.List, error) {
	args := m.Called(ctx, ownerID, name)
	if list, ok := args.Get(0).(*entity.List); ok {
		return list, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockListUsecase) DeleteList(ctx context.Context, ownerID, listID int64) (*entity.List, error) {
	args := m.Called(ctx, ownerID, listID)
	if list, ok := args.Get(0).(*entity.List); ok {
		return list, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockTaskUsecase struct {
	mock.Mock
}

func (m *mockTaskUsecase) ListTasks(ctx context.Context, ownerID, listID int64, skip, limit int) ([]*entity.Task, error) {
	args := m.Called(ctx, ownerID, listID, skip, limit)
	if tasks, ok := args.Get(0).([]*entity.Task); ok {
		return tasks, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTaskUsecase) CreateTask(ctx context.Context, ownerID, listID int64, input *usecase.CreateTaskInput) (*entity.Task, error) {
	args := m.Called(ctx, ownerID, listID, input)
	if task, ok := args.Get(0).(*entity.Task); ok {
		return task, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTaskUsecase) GetTask(ctx context.Context, ownerID, listID, taskID int64) (*entity.Task, error) {
	args := m.Called(ctx, ownerID, listID, taskID)
	if task, ok := args.Get(0).(*entity.Task); ok {
		return task, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTaskUsecase) SetTaskCompleted(ctx context.Context, ownerID, listID, taskID int64, completed bool) (*entity.Task, error) {
	args := m.Called(ctx, ownerID, listID, taskID, completed)
	if task, ok := args.Get(0).(*entity.Task); ok {
		return task, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTaskUsecase) DeleteTask(ctx context.Context, ownerID, listID, taskID int64) (*entity.Task, error) {
	args := m.Called(ctx, ownerID, listID, taskID)
	if task, ok := args.Get(0).(*entity.Task); ok {
		return task, args.Error(1)
	}

	return nil, args.Error(1)
}

// setPathParams attaches path parameters to a context built outside a router.
func setPathParams(c echo.Context, names []string, values []string) {
	c.SetParamNames(names...)
	c.SetParamValues(values...)
}
