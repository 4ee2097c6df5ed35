package jsonfile

import (
	"context"
	"fmt"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
	"rentalhq-backend/internal/storage"
)

type inquiryRepository struct {
	db *db
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	return r.db.update("inquiry.create", func(doc *storage.Document) error {
		inquiry.ID = nextID("I", len(doc.Inquiries))
		inquiry.Status = domain.InquiryStatusNew
		doc.Inquiries = append([]domain.Inquiry{*inquiry}, doc.Inquiries...)
		return nil
	})
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	var updated *domain.Inquiry
	err := r.db.update("inquiry.updateStatus", func(doc *storage.Document) error {
		for i := range doc.Inquiries {
			if doc.Inquiries[i].ID == id {
				doc.Inquiries[i].Status = status
				inq := doc.Inquiries[i]
				updated = &inq
				return nil
			}
		}
		return fmt.Errorf("inquiry %s: %w", id, repository.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *inquiryRepository) List(ctx context.Context) ([]domain.Inquiry, error) {
	var inquiries []domain.Inquiry
	err := r.db.view(func(doc *storage.Document) error {
		inquiries = doc.Inquiries
		return nil
	})
	return inquiries, err
}
