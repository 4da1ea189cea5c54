package mongo

import (
	"context"
	"regexp"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// bookRepository implements repository.BookRepository on the books collection.
type bookRepository struct {
	coll *mongo.Collection
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *Database) repository.BookRepository {
	return &bookRepository{coll: db.Books()}
}

func (repo *bookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	return repo.findBooks(ctx, bson.M{})
}

func (repo *bookRepository) FindByID(ctx context.Context, id string) (*entity.Book, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var book entity.Book
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&book); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrBookNotFound
		}

		return nil, domainerrors.NewDatabaseError(err, "failed to find book by id")
	}

	return &book, nil
}

func (repo *bookRepository) FindByOwner(ctx context.Context, email string) ([]*entity.Book, error) {
	return repo.findBooks(ctx, bson.M{"userEmail": email})
}

// FindTopByUpvotes computes upvoteCount as the length of upvotedBy (missing
// treated as empty), sorts descending and keeps the first `limit` books.
// The sort is stable with respect to natural order for ties.
func (repo *bookRepository) FindTopByUpvotes(ctx context.Context, limit int) ([]*entity.Book, error) {
	cursor, err := repo.coll.Aggregate(ctx, topBooksPipeline(limit))
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to aggregate top books")
	}

	return decodeBooks(ctx, cursor)
}

func (repo *bookRepository) Search(ctx context.Context, query string) ([]*entity.Book, error) {
	return repo.findBooks(ctx, searchFilter(query))
}

func (repo *bookRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Book, error) {
	return repo.findBooks(ctx, bson.M{"bookCategory": category})
}

func (repo *bookRepository) Insert(ctx context.Context, book *entity.Book) (*repository.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, book)
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to insert book")
	}

	return toInsertResult(res), nil
}

func (repo *bookRepository) Upsert(ctx context.Context, id string, book *entity.Book) (*repository.UpdateResult, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// $set with the zero ID stripped so the payload cannot overwrite _id.
	book.ID = primitive.NilObjectID
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": book},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to upsert book")
	}

	return toUpdateResult(res), nil
}

func (repo *bookRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to delete book")
	}

	return &repository.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// AppendUpvote pushes without dedup or an existence check; updating a
// missing id reports zero matched documents rather than failing.
func (repo *bookRepository) AppendUpvote(ctx context.Context, id, email string) (*repository.UpdateResult, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"upvotedBy": email}},
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to append upvote")
	}

	return toUpdateResult(res), nil
}

func (repo *bookRepository) CountByOwner(ctx context.Context, email string) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.M{"userEmail": email})
	if err != nil {
		return 0, domainerrors.NewDatabaseError(err, "failed to count books by owner")
	}

	return count, nil
}

func (repo *bookRepository) CategoryCountsByOwner(ctx context.Context, email string) ([]repository.CategoryCount, error) {
	cursor, err := repo.coll.Aggregate(ctx, categoryCountPipeline(email))
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to aggregate category counts")
	}

	counts := make([]repository.CategoryCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to decode category counts")
	}

	return counts, nil
}

func (repo *bookRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := repo.coll.Distinct(ctx, "bookCategory", bson.M{})
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to fetch distinct categories")
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}

	return categories, nil
}

func (repo *bookRepository) findBooks(ctx context.Context, filter bson.M) ([]*entity.Book, error) {
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to find books")
	}

	return decodeBooks(ctx, cursor)
}

func decodeBooks(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Book, error) {
	books := make([]*entity.Book, 0)
	if err := cursor.All(ctx, &books); err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to decode books")
	}

	return books, nil
}

// searchFilter matches query as a case-insensitive substring of the title
// or the author. The text is quoted so user input cannot inject regex
// metacharacters.
func searchFilter(query string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}

	return bson.M{
		"$or": bson.A{
			bson.M{"bookTitle": pattern},
			bson.M{"bookAuthor": pattern},
		},
	}
}

// topBooksPipeline ranks books by the length of upvotedBy, treating a
// missing field as an empty list.
func topBooksPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$addFields", Value: bson.M{
			"upvoteCount": bson.M{
				"$size": bson.M{"$ifNull": bson.A{"$upvotedBy", bson.A{}}},
			},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "upvoteCount", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}
}

// categoryCountPipeline groups one owner's books by category.
func categoryCountPipeline(email string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userEmail": email}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$bookCategory",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"category": "$_id",
			"count":    1,
			"_id":      0,
		}}},
	}
}

func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrInvalidObjectID.WrapMessage("invalid hex object id")
	}

	return oid, nil
}

func toInsertResult(res *mongo.InsertOneResult) *repository.InsertResult {
	result := &repository.InsertResult{}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.InsertedID = oid.Hex()
	}

	return result
}

func toUpdateResult(res *mongo.UpdateResult) *repository.UpdateResult {
	result := &repository.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		result.UpsertedID = oid.Hex()
	}

	return result
}
