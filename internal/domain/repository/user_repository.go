package repository

import (
	"context"

	"bookshelf/internal/domain/entity"
)

// UserRepository defines persistence operations for the users collection.
type UserRepository interface {
	// Insert stores a new profile. No duplicate-email check is performed.
	Insert(ctx context.Context, user *entity.User) (*InsertResult, error)

	// FindAll returns every stored profile.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID returns one profile by its hex id, or
	// domainerrors.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
