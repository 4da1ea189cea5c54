package handler

import (
	"log/slog"
	"net/http"

	"bookshelf/internal/delivery/http/response"
	"bookshelf/internal/domain/entity"
	"bookshelf/internal/usecase"

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

// UserRequest is the payload for registering a user profile.
type UserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photoURL"`
}

// Register handles POST /users. Registration performs no duplicate-email
// check; the token issuer owns identity uniqueness.
func (h *UserHandler) Register(c echo.Context) error {
	var input UserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_PAYLOAD", "invalid user payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Register(c.Request().Context(), &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		PhotoURL: input.PhotoURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "User registered successfully")
}

// ListAll handles GET /users.
func (h *UserHandler) ListAll(c echo.Context) error {
	users, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// GetByID handles GET /user/:id.
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}
