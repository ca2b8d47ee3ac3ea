package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tasklist/internal/delivery/http/middleware"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListHandler holds dependencies for list-related handlers.
type ListHandler struct {
	uc     usecase.ListUsecase
	logger *slog.Logger
}

// NewListHandler is the constructor for ListHandler, injected by Fx.
func NewListHandler(uc usecase.ListUsecase, logger *slog.Logger) *ListHandler {
	return &ListHandler{
		uc:     uc,
		logger: logger,
	}
}

type createListRequest struct {
	Name string `json:"name" validate:"required"`
}

// GetLists returns a page of the authenticated user's lists.
func (h *ListHandler) GetLists(c echo.Context) error {
	user := middleware.CurrentUser(c)

	skip, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	lists, err := h.uc.ListLists(c.Request().Context(), user.ID, skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	// An empty page serializes as [], so the 404-on-null case from the
	// route table never fires in practice.
	return c.JSON(http.StatusOK, toListResponses(lists))
}

// CreateList creates a list owned by the authenticated user.
func (h *ListHandler) CreateList(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var input createListRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid list payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	list, err := h.uc.CreateList(c.Request().Context(), user.ID, &usecase.CreateListInput{Name: input.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toListResponse(list))
}

// GetList returns a single owned list with its tasks.
func (h *ListHandler) GetList(c echo.Context) error {
	user := middleware.CurrentUser(c)

	listID, err := pathID(c, "list_id")
	if err != nil {
		return err
	}

	list, err := h.uc.GetList(c.Request().Context(), user.ID, listID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toListResponse(list))
}

// DeleteList deletes an owned list (and its tasks) and returns the removed list.
// The target comes from the list_id query parameter.
func (h *ListHandler) DeleteList(c echo.Context) error {
	user := middleware.CurrentUser(c)

	listID, err := queryID(c, "list_id")
	if err != nil {
		return err
	}

	list, err := h.uc.DeleteList(c.Request().Context(), user.ID, listID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toListResponse(list))
}

// --- Parameter helpers shared by list and task handlers ---

// pageParams reads the optional skip/limit query parameters.
func pageParams(c echo.Context) (skip, limit int, err error) {
	skip, err = intQuery(c, "skip", 0)
	if err != nil {
		return 0, 0, err
	}

	limit, err = intQuery(c, "limit", usecase.DefaultPageLimit)
	if err != nil {
		return 0, 0, err
	}

	return skip, limit, nil
}

func intQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(name + " must be an integer")
	}

	return value, nil
}

func queryID(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(name + " query parameter is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(name + " must be an integer")
	}

	return id, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(name + " must be an integer")
	}

	return id, nil
}
