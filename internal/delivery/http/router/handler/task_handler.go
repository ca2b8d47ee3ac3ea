package handler

import (
	"log/slog"
	"net/http"

	"tasklist/internal/delivery/http/middleware"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTaskRequest struct {
	Title string `json:"title" validate:"required"`
}

type updateTaskRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// GetTasks returns a page of tasks belonging to an owned list.
func (h *TaskHandler) GetTasks(c echo.Context) error {
	user := middleware.CurrentUser(c)

	listID, err := pathID(c, "list_id")
	if err != nil {
		return err
	}

	skip, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), user.ID, listID, skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// CreateTask creates an uncompleted task under an owned list.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	user := middleware.CurrentUser(c)

	listID, err := pathID(c, "list_id")
	if err != nil {
		return err
	}

	var input createTaskRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid task payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	task, err := h.uc.CreateTask(c.Request().Context(), user.ID, listID, &usecase.CreateTaskInput{Title: input.Title})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// UpdateTask sets the completed flag of a task.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	user := middleware.CurrentUser(c)

	listID, err := pathID(c, "list_id")
	if err != nil {
		return err
	}

	taskID, err := pathID(c, "task_id")
	if err != nil {
		return err
	}

	var input updateTaskRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid task payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	task, err := h.uc.SetTaskCompleted(c.Request().Context(), user.ID, listID, taskID, *input.Completed)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// DeleteTask deletes a task from an owned list and returns the removed task.
// The target comes from the task_id query parameter.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	user := middleware.CurrentUser(c)

	listID, err := pathID(c, "list_id")
	if err != nil {
		return err
	}

	taskID, err := queryID(c, "task_id")
	if err != nil {
		return err
	}

	task, err := h.uc.DeleteTask(c.Request().Context(), user.ID, listID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}
