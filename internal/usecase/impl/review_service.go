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

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
	}
}

func (s *reviewService) Add(ctx context.Context, review *entity.Review) (*repository.InsertResult, error) {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	result, err := s.reviewRepo.Insert(ctx, review)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add review")
	}

	return result, nil
}

func (s *reviewService) ListByBook(ctx context.Context, bookID string) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindByBookID(ctx, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (s *reviewService) Replace(ctx context.Context, id string, review *entity.Review) (*repository.UpdateResult, error) {
	result, err := s.reviewRepo.Upsert(ctx, id, review)
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace review")
	}

	return result, nil
}

func (s *reviewService) Remove(ctx context.Context, id string) (*repository.DeleteResult, error) {
	result, err := s.reviewRepo.Delete(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove review")
	}

	return result, nil
}
