// Package impl contains the concrete usecase services.
package impl

import (
	"context"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// topBooksLimit is the fixed size of the top-books leaderboard.
const topBooksLimit = 6

type bookService struct {
	bookRepo repository.BookRepository
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	BookRepo repository.BookRepository
}

// NewBookService creates a new book service instance
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		bookRepo: params.BookRepo,
	}
}

func (s *bookService) ListAll(ctx context.Context) ([]*entity.Book, error) {
	books, err := s.bookRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

func (s *bookService) Get(ctx context.Context, id string) (*entity.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get book")
	}

	return book, nil
}

func (s *bookService) ListByOwner(ctx context.Context, email string) ([]*entity.Book, error) {
	books, err := s.bookRepo.FindByOwner(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books by owner")
	}

	return books, nil
}

func (s *bookService) TopByUpvotes(ctx context.Context) ([]*entity.Book, error) {
	books, err := s.bookRepo.FindTopByUpvotes(ctx, topBooksLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank top books")
	}

	return books, nil
}

func (s *bookService) Search(ctx context.Context, query string) ([]*entity.Book, error) {
	books, err := s.bookRepo.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search books")
	}

	return books, nil
}

func (s *bookService) ListByCategory(ctx context.Context, category string) ([]*entity.Book, error) {
	books, err := s.bookRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books by category")
	}

	return books, nil
}

func (s *bookService) Add(ctx context.Context, book *entity.Book) (*repository.InsertResult, error) {
	result, err := s.bookRepo.Insert(ctx, book)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add book")
	}

	return result, nil
}

func (s *bookService) Replace(ctx context.Context, id string, book *entity.Book) (*repository.UpdateResult, error) {
	result, err := s.bookRepo.Upsert(ctx, id, book)
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace book")
	}

	return result, nil
}

func (s *bookService) Remove(ctx context.Context, id string) (*repository.DeleteResult, error) {
	result, err := s.bookRepo.Delete(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove book")
	}

	return result, nil
}

func (s *bookService) Upvote(ctx context.Context, id, email string) (*repository.UpdateResult, error) {
	result, err := s.bookRepo.AppendUpvote(ctx, id, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upvote book")
	}

	return result, nil
}

func (s *bookService) CountByOwner(ctx context.Context, email string) (*repository.OwnerCount, error) {
	count, err := s.bookRepo.CountByOwner(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count books by owner")
	}

	return &repository.OwnerCount{Email: email, Count: count}, nil
}

func (s *bookService) CategoryCountsByOwner(ctx context.Context, email string) ([]repository.CategoryCount, error) {
	counts, err := s.bookRepo.CategoryCountsByOwner(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group books by category")
	}

	return counts, nil
}

func (s *bookService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.bookRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch categories")
	}

	return categories, nil
}
