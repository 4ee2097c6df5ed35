package repository

import (
	"context"
	"errors"

	"rentalhq-backend/internal/domain"
)

// ErrNotFound is returned when a referenced record id does not exist at
// mutation time.
var ErrNotFound = errors.New("record not found")

type GeneratorRepository interface {
	Create(ctx context.Context, gen *domain.Generator) error
	GetByID(ctx context.Context, id string) (*domain.Generator, error)
	Update(ctx context.Context, gen *domain.Generator) error
	List(ctx context.Context) ([]domain.Generator, error)
}

type BookingRepository interface {
	// Create validates customerID, assigns the booking id, stores the
	// booking with status Pending and increments the customer's
	// totalBookings counter, all inside one snapshot mutation.
	Create(ctx context.Context, booking *domain.Booking, customerID string) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus changes the booking's status and fires the unit-status
	// cascade for the matching transitions: moving to Approved from any
	// other status marks every booked unit Rented, and moving from
	// Approved to Rejected marks them Available again. The booking and
	// all affected units change in one snapshot write.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	List(ctx context.Context) ([]domain.Review, error)
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error)
	List(ctx context.Context) ([]domain.Inquiry, error)
}
