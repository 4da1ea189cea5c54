package repository

import (
	"context"

	"bookshelf/internal/domain/entity"
)

// ReviewRepository defines persistence operations for the reviews collection.
type ReviewRepository interface {
	// Insert stores a new review. The referenced book is not checked.
	Insert(ctx context.Context, review *entity.Review) (*InsertResult, error)

	// FindByBookID returns the reviews for one book, empty when none exist.
	FindByBookID(ctx context.Context, bookID string) ([]*entity.Review, error)

	// Upsert replaces the fields of the review at id, inserting when absent.
	Upsert(ctx context.Context, id string, review *entity.Review) (*UpdateResult, error)

	// Delete removes the review at id.
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
