package repository

import (
	"context"

	"bookshelf/internal/domain/entity"
)

// BookRepository defines persistence operations for the books collection.
// Implementations translate missing documents into domainerrors.ErrBookNotFound
// and malformed hex ids into domainerrors.ErrInvalidObjectID.
type BookRepository interface {
	// FindAll returns every book in natural store order.
	FindAll(ctx context.Context) ([]*entity.Book, error)

	// FindByID returns one book by its hex id.
	FindByID(ctx context.Context, id string) (*entity.Book, error)

	// FindByOwner returns the books whose userEmail matches email.
	FindByOwner(ctx context.Context, email string) ([]*entity.Book, error)

	// FindTopByUpvotes returns the `limit` books with the most upvotes,
	// ties broken by the store's natural order. UpvoteCount is populated.
	FindTopByUpvotes(ctx context.Context, limit int) ([]*entity.Book, error)

	// Search matches query as a case-insensitive substring of the title
	// or the author.
	Search(ctx context.Context, query string) ([]*entity.Book, error)

	// FindByCategory returns books with an exact category match.
	FindByCategory(ctx context.Context, category string) ([]*entity.Book, error)

	// Insert stores a new book and reports the generated id.
	Insert(ctx context.Context, book *entity.Book) (*InsertResult, error)

	// Upsert replaces the fields of the book at id, inserting when absent.
	Upsert(ctx context.Context, id string, book *entity.Book) (*UpdateResult, error)

	// Delete removes the book at id. Deleting a missing id is not an error;
	// the result reports zero deletions.
	Delete(ctx context.Context, id string) (*DeleteResult, error)

	// AppendUpvote pushes email onto upvotedBy. No dedup, no existence
	// check: a missing id yields a zero-effect acknowledgment.
	AppendUpvote(ctx context.Context, id, email string) (*UpdateResult, error)

	// CountByOwner counts books whose userEmail matches email.
	CountByOwner(ctx context.Context, email string) (int64, error)

	// CategoryCountsByOwner groups one owner's books by category. Bucket
	// order is unspecified.
	CategoryCountsByOwner(ctx context.Context, email string) ([]CategoryCount, error)

	// DistinctCategories returns the set of category values across all books.
	DistinctCategories(ctx context.Context) ([]string, error)
}
