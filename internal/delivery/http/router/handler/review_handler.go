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

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// ReviewRequest is the payload for adding or replacing a review. The book
// reference is not checked against the books collection.
type ReviewRequest struct {
	BookID        string  `json:"bookId" validate:"required"`
	Rating        float64 `json:"rating"`
	Text          string  `json:"reviewText"`
	ReviewerName  string  `json:"reviewerName"`
	ReviewerEmail string  `json:"reviewerEmail"`
}

func (r *ReviewRequest) toEntity() *entity.Review {
	return &entity.Review{
		BookID:        r.BookID,
		Rating:        r.Rating,
		Text:          r.Text,
		ReviewerName:  r.ReviewerName,
		ReviewerEmail: r.ReviewerEmail,
	}
}

// Add handles POST /addReview.
func (h *ReviewHandler) Add(c echo.Context) error {
	var input ReviewRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_PAYLOAD", "invalid review payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Add(c.Request().Context(), input.toEntity())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Review added successfully")
}

// ListByBook handles GET /reviews/:bookId, answering an empty list when the
// book has no reviews.
func (h *ReviewHandler) ListByBook(c echo.Context) error {
	reviews, err := h.uc.ListByBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// Replace handles PUT /updateReview/:id with upsert semantics.
func (h *ReviewHandler) Replace(c echo.Context) error {
	var input ReviewRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_PAYLOAD", "invalid review payload")
	}

	result, err := h.uc.Replace(c.Request().Context(), c.Param("id"), input.toEntity())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Review updated successfully")
}

// Delete handles DELETE /deleteReview/:id.
func (h *ReviewHandler) Delete(c echo.Context) error {
	result, err := h.uc.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Review deleted successfully")
}
