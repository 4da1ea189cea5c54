package usecase

import (
	"context"

	"bookshelf/internal/domain/repository"
)

// WishlistUsecase defines the wishlist operations exposed over HTTP.
type WishlistUsecase interface {
	// Add inserts an entry for (bookID, userEmail) with a server-assigned
	// timestamp, or returns ErrWishlistDuplicate when one already exists.
	Add(ctx context.Context, bookID, userEmail string) (*repository.InsertResult, error)
}
