// Package usecase defines the application-level interfaces the delivery
// layer drives.
package usecase

import (
	"context"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"
)

// BookUsecase defines the book operations exposed over HTTP.
type BookUsecase interface {
	// ListAll returns every book.
	ListAll(ctx context.Context) ([]*entity.Book, error)

	// Get returns one book by hex id.
	Get(ctx context.Context, id string) (*entity.Book, error)

	// ListByOwner returns the books owned by email.
	ListByOwner(ctx context.Context, email string) ([]*entity.Book, error)

	// TopByUpvotes returns the six most-upvoted books.
	TopByUpvotes(ctx context.Context) ([]*entity.Book, error)

	// Search matches query case-insensitively against title or author.
	Search(ctx context.Context, query string) ([]*entity.Book, error)

	// ListByCategory returns books with an exact category match.
	ListByCategory(ctx context.Context, category string) ([]*entity.Book, error)

	// Add inserts a new book.
	Add(ctx context.Context, book *entity.Book) (*repository.InsertResult, error)

	// Replace upserts the fields of the book at id.
	Replace(ctx context.Context, id string, book *entity.Book) (*repository.UpdateResult, error)

	// Remove deletes the book at id.
	Remove(ctx context.Context, id string) (*repository.DeleteResult, error)

	// Upvote appends email to the book's upvotedBy list.
	Upvote(ctx context.Context, id, email string) (*repository.UpdateResult, error)

	// CountByOwner counts the books owned by email.
	CountByOwner(ctx context.Context, email string) (*repository.OwnerCount, error)

	// CategoryCountsByOwner groups one owner's books by category.
	CategoryCountsByOwner(ctx context.Context, email string) ([]repository.CategoryCount, error)

	// Categories returns the distinct category values.
	Categories(ctx context.Context) ([]string, error)
}
