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

// userRepository implements repository.UserRepository on the users collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *Database) repository.UserRepository {
	return &userRepository{coll: db.Users()}
}

// Insert stores the profile as submitted. Registration performs no
// duplicate-email check.
func (repo *userRepository) Insert(ctx context.Context, user *entity.User) (*repository.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to insert user")
	}

	return toInsertResult(res), nil
}

func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to find users")
	}

	users := make([]*entity.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, domainerrors.NewDatabaseError(err, "failed to decode users")
	}

	return users, nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseError(err, "failed to find user by id")
	}

	return &user, nil
}
