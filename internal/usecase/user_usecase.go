package usecase

import (
	"context"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"
)

// UserUsecase defines the user-profile operations exposed over HTTP.
type UserUsecase interface {
	// Register stores a new profile. No duplicate-email check.
	Register(ctx context.Context, user *entity.User) (*repository.InsertResult, error)

	// ListAll returns every stored profile.
	ListAll(ctx context.Context) ([]*entity.User, error)

	// Get returns one profile by hex id.
	Get(ctx context.Context, id string) (*entity.User, error)
}
