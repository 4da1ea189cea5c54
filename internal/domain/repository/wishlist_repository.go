package repository

import (
	"context"

	"bookshelf/internal/domain/entity"
)

// WishlistRepository defines persistence operations for the wishlist
// collection. A unique (bookId, userEmail) index backs the one-entry-per-pair
// invariant; Insert surfaces index violations as
// domainerrors.ErrWishlistDuplicate.
type WishlistRepository interface {
	// Exists reports whether an entry for (bookID, userEmail) is present.
	Exists(ctx context.Context, bookID, userEmail string) (bool, error)

	// Insert stores a new entry with a server-assigned timestamp.
	Insert(ctx context.Context, entry *entity.WishlistEntry) (*InsertResult, error)
}
