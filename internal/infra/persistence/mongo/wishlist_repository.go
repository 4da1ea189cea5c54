package mongo

import (
	"context"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// wishlistRepository implements repository.WishlistRepository on the
// wishlist collection.
type wishlistRepository struct {
	coll *mongo.Collection
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *Database) repository.WishlistRepository {
	return &wishlistRepository{coll: db.Wishlist()}
}

func (repo *wishlistRepository) Exists(ctx context.Context, bookID, userEmail string) (bool, error) {
	oid, err := objectIDFromHex(bookID)
	if err != nil {
		return false, err
	}

	err = repo.coll.FindOne(ctx, bson.M{"bookId": oid, "userEmail": userEmail}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}

		return false, domainerrors.NewDatabaseError(err, "failed to check wishlist entry")
	}

	return true, nil
}

// Insert relies on the unique (bookId, userEmail) index: when two
// concurrent requests pass the existence check, the loser's duplicate-key
// error is reported as the same conflict the check would have raised.
func (repo *wishlistRepository) Insert(ctx context.Context, entry *entity.WishlistEntry) (*repository.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, entry)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domainerrors.ErrWishlistDuplicate
		}

		return nil, domainerrors.NewDatabaseError(err, "failed to insert wishlist entry")
	}

	return toInsertResult(res), nil
}
