package impl

import (
	"context"
	"time"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
}

// NewWishlistService creates a new wishlist service instance
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
	}
}

// Add performs the duplicate pre-check and then inserts. The check and the
// insert are not atomic; the unique store index resolves the race, and the
// repository reports the loser as the same conflict.
func (s *wishlistService) Add(ctx context.Context, bookID, userEmail string) (*repository.InsertResult, error) {
	exists, err := s.wishlistRepo.Exists(ctx, bookID, userEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check wishlist entry")
	}
	if exists {
		return nil, domainerrors.ErrWishlistDuplicate
	}

	oid, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return nil, domainerrors.ErrInvalidObjectID.WrapMessage("invalid bookId")
	}

	entry := &entity.WishlistEntry{
		BookID:    oid,
		UserEmail: userEmail,
		AddedAt:   time.Now(),
	}

	result, err := s.wishlistRepo.Insert(ctx, entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert wishlist entry")
	}

	return result, nil
}
