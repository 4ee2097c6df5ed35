package jsonfile

import (
	"context"
	"fmt"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
	"rentalhq-backend/internal/storage"
)

type paymentRepository struct {
	db *db
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return r.db.update("payment.create", func(doc *storage.Document) error {
		payment.ID = nextID("P", len(doc.Payments))
		doc.Payments = append([]domain.Payment{*payment}, doc.Payments...)
		return nil
	})
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error) {
	var updated *domain.Payment
	err := r.db.update("payment.updateStatus", func(doc *storage.Document) error {
		for i := range doc.Payments {
			if doc.Payments[i].ID == id {
				doc.Payments[i].Status = status
				p := doc.Payments[i]
				updated = &p
				return nil
			}
		}
		return fmt.Errorf("payment %s: %w", id, repository.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.view(func(doc *storage.Document) error {
		payments = doc.Payments
		return nil
	})
	return payments, err
}
