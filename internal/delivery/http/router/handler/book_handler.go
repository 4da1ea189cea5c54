// Package handler contains the HTTP handlers for the application.
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

// BookHandler holds dependencies for book-related handlers.
type BookHandler struct {
	uc     usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

// BookRequest is the payload for adding or replacing a book.
type BookRequest struct {
	Title         string `json:"bookTitle" validate:"required"`
	Author        string `json:"bookAuthor" validate:"required"`
	Category      string `json:"bookCategory"`
	Overview      string `json:"bookOverview"`
	CoverPhoto    string `json:"coverPhoto"`
	TotalPages    int    `json:"totalPage"`
	ReadingStatus string `json:"readingStatus"`
	UserEmail     string `json:"userEmail" validate:"required,email"`
	UserName      string `json:"userName"`
}

func (r *BookRequest) toEntity() *entity.Book {
	return &entity.Book{
		Title:         r.Title,
		Author:        r.Author,
		Category:      r.Category,
		Overview:      r.Overview,
		CoverPhoto:    r.CoverPhoto,
		TotalPages:    r.TotalPages,
		ReadingStatus: r.ReadingStatus,
		OwnerEmail:    r.UserEmail,
		OwnerName:     r.UserName,
	}
}

// UpvoteRequest is the payload for the upvote action.
type UpvoteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ListAll handles GET /bookshelf and GET /allBooks.
func (h *BookHandler) ListAll(c echo.Context) error {
	books, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Books retrieved successfully")
}

// GetByID handles GET /book/:id.
func (h *BookHandler) GetByID(c echo.Context) error {
	book, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book retrieved successfully")
}

// ListMine handles GET /myBooks. The auth and ownership middleware have
// already verified that the email parameter belongs to the caller.
func (h *BookHandler) ListMine(c echo.Context) error {
	books, err := h.uc.ListByOwner(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Books retrieved successfully")
}

// Top handles GET /books/top.
func (h *BookHandler) Top(c echo.Context) error {
	books, err := h.uc.TopByUpvotes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Top books retrieved successfully")
}

// Search handles GET /books/search. A missing query yields 400 before any
// store access.
func (h *BookHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return response.BadRequest(c, "QUERY_MISSING", "query text missing")
	}

	books, err := h.uc.Search(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Search completed successfully")
}

// Add handles POST /addBook.
func (h *BookHandler) Add(c echo.Context) error {
	var input BookRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_PAYLOAD", "invalid book payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Add(c.Request().Context(), input.toEntity())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Book added successfully")
}

// Replace handles PUT /book/:id with upsert semantics. The payload is not
// required to be complete, so no field validation applies here.
func (h *BookHandler) Replace(c echo.Context) error {
	var input BookRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_PAYLOAD", "invalid book payload")
	}

	result, err := h.uc.Replace(c.Request().Context(), c.Param("id"), input.toEntity())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Book updated successfully")
}

// Delete handles DELETE /book/:id.
func (h *BookHandler) Delete(c echo.Context) error {
	result, err := h.uc.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Book deleted successfully")
}

// Upvote handles PATCH /upvote/:bookId. No dedup and no existence check:
// upvoting a missing id acknowledges zero matched documents.
func (h *BookHandler) Upvote(c echo.Context) error {
	var input UpvoteRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_PAYLOAD", "invalid upvote payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Upvote(c.Request().Context(), c.Param("bookId"), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Upvote recorded successfully")
}

// CountByOwner handles GET /books/count.
func (h *BookHandler) CountByOwner(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "EMAIL_MISSING", "email is missing")
	}

	count, err := h.uc.CountByOwner(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, count, "Book count retrieved successfully")
}

// CategoryCounts handles GET /books/category-count.
func (h *BookHandler) CategoryCounts(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "EMAIL_MISSING", "email is missing")
	}

	counts, err := h.uc.CategoryCountsByOwner(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts, "Category counts retrieved successfully")
}

// Categories handles GET /categories.
func (h *BookHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// ListByCategory handles GET /books/category/:categoryName.
func (h *BookHandler) ListByCategory(c echo.Context) error {
	books, err := h.uc.ListByCategory(c.Request().Context(), c.Param("categoryName"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Books retrieved successfully")
}
