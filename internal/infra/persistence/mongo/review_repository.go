package mongo

import (
	"context"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reviewRepository implements repository.ReviewRepository on the reviews
// collection.
type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *Database) repository.ReviewRepository {
	return &reviewRepository{coll: db.Reviews()}
}

// Insert stores the review without checking that the referenced book exists;
// referential integrity is the caller's responsibility.
func (repo *reviewRepository) Insert(ctx context.Context, review *entity.Review) (*repository.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, review)
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to insert review")
	}

	return toInsertResult(res), nil
}

// FindByBookID matches the bookId reference exactly. Reviews store the book
// reference as a plain hex string, so no ObjectID conversion happens here.
func (repo *reviewRepository) FindByBookID(ctx context.Context, bookID string) ([]*entity.Review, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"bookId": bookID})
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to find reviews")
	}

	reviews := make([]*entity.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to decode reviews")
	}

	return reviews, nil
}

func (repo *reviewRepository) Upsert(ctx context.Context, id string, review *entity.Review) (*repository.UpdateResult, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	review.ID = primitive.NilObjectID
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": review},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to upsert review")
	}

	return toUpdateResult(res), nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to delete review")
	}

	return &repository.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
