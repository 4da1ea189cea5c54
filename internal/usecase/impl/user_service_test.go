package impl

import (
	"context"
	"testing"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUserService(repo *fakeUserRepo) *userService {
	return &userService{userRepo: repo}
}

func TestUserService_Register_StampsCreatedAt(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	result, err := svc.Register(context.Background(), &entity.User{
		Name:  "Jess",
		Email: "jess@x.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.InsertedID)
	require.Len(t, repo.users, 1)
	assert.False(t, repo.users[0].CreatedAt.IsZero())
}

func TestUserService_Register_AllowsDuplicateEmails(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &entity.User{Email: "dup@x.com"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &entity.User{Email: "dup@x.com"})
	require.NoError(t, err)

	assert.Len(t, repo.users, 2)
}

func TestUserService_Get_NotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
