package jsonfile

import (
	"context"
	"fmt"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
	"rentalhq-backend/internal/storage"
)

type bookingRepository struct {
	db *db
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking, customerID string) error {
	return r.db.update("booking.create", func(doc *storage.Document) error {
		customer := -1
		for i := range doc.Customers {
			if doc.Customers[i].ID == customerID {
				customer = i
				break
			}
		}
		if customer == -1 {
			return fmt.Errorf("customer %s: %w", customerID, repository.ErrNotFound)
		}

		booking.ID = nextID("B", len(doc.Bookings))
		booking.Status = domain.BookingStatusPending
		if booking.BookedUnits == nil {
			booking.BookedUnits = []domain.BookedUnit{}
		}

		// Newest first, and the cached per-customer counter moves with it.
		doc.Bookings = append([]domain.Booking{*booking}, doc.Bookings...)
		doc.Customers[customer].TotalBookings++
		return nil
	})
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var booking *domain.Booking
	err := r.db.view(func(doc *storage.Document) error {
		for i := range doc.Bookings {
			if doc.Bookings[i].ID == id {
				b := doc.Bookings[i]
				booking = &b
				return nil
			}
		}
		return fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	})
	return booking, err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	var updated *domain.Booking
	err := r.db.update("booking.updateStatus", func(doc *storage.Document) error {
		idx := -1
		for i := range doc.Bookings {
			if doc.Bookings[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
		}

		booking := &doc.Bookings[idx]
		oldStatus := booking.Status
		booking.Status = status

		// Unit-status cascade. Only two transitions move units; every
		// other one touches the booking record alone.
		switch {
		case status == domain.BookingStatusApproved && oldStatus != domain.BookingStatusApproved:
			setBookedUnitStatuses(doc, booking.BookedUnits, domain.UnitStatusRented)
		case status == domain.BookingStatusRejected && oldStatus == domain.BookingStatusApproved:
			setBookedUnitStatuses(doc, booking.BookedUnits, domain.UnitStatusAvailable)
		}

		b := *booking
		updated = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.view(func(doc *storage.Document) error {
		bookings = doc.Bookings
		return nil
	})
	return bookings, err
}

// setBookedUnitStatuses looks each booked unit up across all generators by
// unit id and rewrites its status. Units deleted since the booking was
// taken are skipped; the snapshot on the booking is all that remains of
// them.
func setBookedUnitStatuses(doc *storage.Document, units []domain.BookedUnit, status domain.UnitStatus) {
	for _, bu := range units {
		for g := range doc.Generators {
			if unit := doc.Generators[g].FindUnit(bu.ID); unit != nil {
				unit.Status = status
			}
		}
	}
}
