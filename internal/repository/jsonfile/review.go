package jsonfile

import (
	"context"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/storage"
)

type reviewRepository struct {
	db *db
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.update("review.create", func(doc *storage.Document) error {
		review.ID = nextID("R", len(doc.Reviews))
		doc.Reviews = append([]domain.Review{*review}, doc.Reviews...)
		return nil
	})
}

func (r *reviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.view(func(doc *storage.Document) error {
		reviews = doc.Reviews
		return nil
	})
	return reviews, err
}
