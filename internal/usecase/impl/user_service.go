package impl

import (
	"context"
	"time"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo repository.UserRepository
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
	}
}

// Register stores the submitted profile, stamping a creation time when the
// client did not provide one.
func (s *userService) Register(ctx context.Context, user *entity.User) (*repository.InsertResult, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	result, err := s.userRepo.Insert(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	return result, nil
}

func (s *userService) ListAll(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (s *userService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}
