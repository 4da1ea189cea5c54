package usecase

import (
	"context"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"
)

// ReviewUsecase defines the review operations exposed over HTTP.
type ReviewUsecase interface {
	// Add inserts a new review without checking the referenced book.
	Add(ctx context.Context, review *entity.Review) (*repository.InsertResult, error)

	// ListByBook returns the reviews for one book, empty when none exist.
	ListByBook(ctx context.Context, bookID string) ([]*entity.Review, error)

	// Replace upserts the fields of the review at id.
	Replace(ctx context.Context, id string, review *entity.Review) (*repository.UpdateResult, error)

	// Remove deletes the review at id.
	Remove(ctx context.Context, id string) (*repository.DeleteResult, error)
}
