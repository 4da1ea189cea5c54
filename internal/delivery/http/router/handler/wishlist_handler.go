package handler

import (
	"log/slog"
	"net/http"

	"bookshelf/internal/delivery/http/response"
	"bookshelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for wishlist handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		uc:     uc,
		logger: logger,
	}
}

// WishlistRequest is the payload for adding a wishlist entry.
type WishlistRequest struct {
	BookID    string `json:"bookId" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required,email"`
}

// Add handles POST /wishlist. A second entry for the same (bookId,
// userEmail) pair answers 409.
func (h *WishlistHandler) Add(c echo.Context) error {
	var input WishlistRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_PAYLOAD", "missing bookId or userEmail")
	}
	if input.BookID == "" || input.UserEmail == "" {
		return response.BadRequest(c, "INVALID_PAYLOAD", "missing bookId or userEmail")
	}

	result, err := h.uc.Add(c.Request().Context(), input.BookID, input.UserEmail)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Book added to wishlist successfully!")
}
