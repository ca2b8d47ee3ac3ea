package handler

import (
	"log/slog"
	"net/http"

	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles the signup request.
func (h *UserHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid signup payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toUserResponse(output.User))
}

// Login handles the JSON login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid login payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	return h.login(c, input.Username, input.Password)
}

// DocsLogin handles the form-encoded login variant used by interactive API
// docs. Same semantics as Login, different request encoding.
func (h *UserHandler) DocsLogin(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("username and password form fields are required")
	}

	return h.login(c, username, password)
}

func (h *UserHandler) login(c echo.Context, username, password string) error {
	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}
