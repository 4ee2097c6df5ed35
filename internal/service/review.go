package service

import (
	"context"
	"fmt"
	"time"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) AddReview(ctx context.Context, customerName string, rating int32, comment string) (*domain.Review, error) {
	if customerName == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	review := &domain.Review{
		CustomerName: customerName,
		Rating:       rating,
		Comment:      comment,
		Date:         time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return s.reviewRepo.List(ctx)
}
