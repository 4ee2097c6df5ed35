package jsonfile

import (
	"context"
	"fmt"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
	"rentalhq-backend/internal/storage"
)

type customerRepository struct {
	db *db
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.update("customer.create", func(doc *storage.Document) error {
		customer.ID = nextID("C", len(doc.Customers))
		doc.Customers = append(doc.Customers, *customer)
		return nil
	})
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var customer *domain.Customer
	err := r.db.view(func(doc *storage.Document) error {
		for i := range doc.Customers {
			if doc.Customers[i].ID == id {
				c := doc.Customers[i]
				customer = &c
				return nil
			}
		}
		return fmt.Errorf("customer %s: %w", id, repository.ErrNotFound)
	})
	return customer, err
}

// GetByPhone resolves a customer by exact phone match. Returns
// ErrNotFound when no customer has the number; phone uniqueness is not
// enforced beyond this lookup.
func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	var customer *domain.Customer
	err := r.db.view(func(doc *storage.Document) error {
		for i := range doc.Customers {
			if doc.Customers[i].Phone == phone {
				c := doc.Customers[i]
				customer = &c
				return nil
			}
		}
		return fmt.Errorf("customer with phone %s: %w", phone, repository.ErrNotFound)
	})
	return customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return r.db.update("customer.update", func(doc *storage.Document) error {
		for i := range doc.Customers {
			if doc.Customers[i].ID == customer.ID {
				// The cached booking counter is owned by booking creation.
				customer.TotalBookings = doc.Customers[i].TotalBookings
				doc.Customers[i] = *customer
				return nil
			}
		}
		return fmt.Errorf("customer %s: %w", customer.ID, repository.ErrNotFound)
	})
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.view(func(doc *storage.Document) error {
		customers = doc.Customers
		return nil
	})
	return customers, err
}
